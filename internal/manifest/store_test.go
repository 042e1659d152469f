package manifest

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"pkg.jsn.cam/sorgen/pkg/sor"
)

// storeTestSuite runs the same checks against any Store implementation
func storeTestSuite(t *testing.T, newStore func(t *testing.T) Store) {
	schema := sor.Schema{sor.Int, sor.String}

	t.Run("SaveAndGet", func(t *testing.T) {
		store := newStore(t)

		run := NewRun("tiny", "/tmp/tiny.txt", schema, 11, 22)
		run.Finish(sor.Stats{Rows: 100, Bytes: 4200}, nil)
		if err := store.Save(run); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := store.Get(run.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Preset != "tiny" || got.Path != "/tmp/tiny.txt" || got.Schema != "INT,STRING" {
			t.Errorf("Get returned %+v", got)
		}
		if got.Seed != [2]uint64{11, 22} {
			t.Errorf("Seed = %v, want [11 22]", got.Seed)
		}
		if got.Rows != 100 || got.Bytes != 4200 || !got.Succeeded() {
			t.Errorf("outcome = rows %d bytes %d succeeded %v", got.Rows, got.Bytes, got.Succeeded())
		}
		if !got.StartedAt.Equal(run.StartedAt) {
			t.Errorf("StartedAt = %v, want %v", got.StartedAt, run.StartedAt)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		store := newStore(t)

		if _, err := store.Get("nonexistent"); !errors.Is(err, ErrRunNotFound) {
			t.Errorf("Get error = %v, want ErrRunNotFound", err)
		}
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		store := newStore(t)

		run := NewRun("medium", "med.txt", schema, 1, 2)
		if err := store.Save(run); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		run.Finish(sor.Stats{}, errors.New("disk full"))
		if err := store.Save(run); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := store.Get(run.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Succeeded() || got.Error != "disk full" {
			t.Errorf("run should record the failure, got error %q", got.Error)
		}

		runs, _ := store.List()
		if len(runs) != 1 {
			t.Errorf("List returned %d runs, want 1", len(runs))
		}
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		store := newStore(t)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, name := range []string{"first", "second", "third"} {
			run := NewRun(name, name+".txt", schema, uint64(i), 0)
			run.StartedAt = base.Add(time.Duration(i) * time.Hour)
			if err := store.Save(run); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
		}

		runs, err := store.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(runs) != 3 {
			t.Fatalf("List returned %d runs, want 3", len(runs))
		}
		for i, want := range []string{"third", "second", "first"} {
			if runs[i].Preset != want {
				t.Errorf("runs[%d] = %s, want %s", i, runs[i].Preset, want)
			}
		}
	})
}

func TestMemoryStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestBoltStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		store, err := NewBoltStore(filepath.Join(t.TempDir(), "manifest.db"))
		if err != nil {
			t.Fatalf("failed to open bolt store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestBoltStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.db")

	store, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore failed: %v", err)
	}
	run := NewRun("tiny", "tiny.txt", sor.Schema{sor.Bool}, 5, 6)
	if err := store.Save(run); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store, err = NewBoltStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Get(run.ID)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Seed != run.Seed {
		t.Errorf("Seed after reopen = %v, want %v", got.Seed, run.Seed)
	}
}

func TestRun_Lifecycle(t *testing.T) {
	t.Parallel()

	run := NewRun("tiny", "tiny.txt", sor.Schema{sor.Bool}, 1, 2)
	if run.ID == "" || run.Version != FormatVersion {
		t.Fatalf("NewRun = %+v, want an id and the current version", run)
	}
	if run.Succeeded() || run.Duration() != 0 {
		t.Error("unfinished run should not report success or a duration")
	}

	run.Finish(sor.Stats{Rows: 3, Bytes: 12}, nil)
	if !run.Succeeded() {
		t.Error("finished run without error should succeed")
	}
	if run.Duration() < 0 {
		t.Errorf("Duration = %v, want >= 0", run.Duration())
	}
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/sorgen/internal/manifest"
	"pkg.jsn.cam/sorgen/internal/preset"
	"pkg.jsn.cam/sorgen/pkg/sor"
)

var errReplayMismatch = errors.New("replay does not match recorded run")

// generate writes one preset file and records the run in store
func generate(store manifest.Store, name, dir string, seed1, seed2 uint64) error {
	p, err := preset.Get(name)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(p.Path(dir))
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	run := manifest.NewRun(p.Name, path, p.Schema, seed1, seed2)
	if err := store.Save(run); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	stats, genErr := write(p, run.Path, seed1, seed2)
	run.Finish(stats, genErr)
	if err := store.Save(run); err != nil {
		return errors.Join(genErr, fmt.Errorf("failed to record run: %w", err))
	}
	if genErr != nil {
		return genErr
	}

	if *verbose {
		logRun(run)
	}
	return nil
}

// replay regenerates a recorded run and checks it came out the same size
func replay(store manifest.Store, id, dir string) error {
	run, err := store.Get(id)
	if err != nil {
		return err
	}
	if err := manifest.CheckReplayable(run); err != nil {
		return err
	}

	p, err := preset.Get(run.Preset)
	if err != nil {
		return err
	}
	if p.Schema.String() != run.Schema {
		return fmt.Errorf("%w: preset %s schema is %s, run used %s",
			errReplayMismatch, p.Name, p.Schema, run.Schema)
	}

	path := run.Path
	if dir != "" {
		path = p.Path(dir)
	}

	stats, err := write(p, path, run.Seed[0], run.Seed[1])
	if err != nil {
		return err
	}
	if run.Succeeded() && (stats.Rows != run.Rows || stats.Bytes != run.Bytes) {
		return fmt.Errorf("%w: wrote %d rows / %d bytes, recorded %d rows / %d bytes",
			errReplayMismatch, stats.Rows, stats.Bytes, run.Rows, run.Bytes)
	}

	if *verbose {
		log.Printf("Replayed run %s into %s (%s)", run.ID, path, humanize.Bytes(uint64(stats.Bytes)))
	}
	return nil
}

func write(p preset.Preset, path string, seed1, seed2 uint64) (sor.Stats, error) {
	var opts []sor.Option
	var bar *progressbar.ProgressBar
	if *showProgress {
		bar = progressbar.NewOptions64(p.Rows,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(p.Output),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("rows"),
			progressbar.OptionShowIts(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, sor.WithProgress(bar))
	}

	stats, err := sor.WriteFile(path, preset.NewRand(seed1, seed2), p.Rows, p.Schema, opts...)
	if bar != nil {
		_ = bar.Finish()
	}
	return stats, err
}

func logRun(run *manifest.Run) {
	log.Printf("Wrote %s: %s rows, %s in %v (run %s, seed %d/%d)",
		run.Path,
		humanize.Comma(run.Rows),
		humanize.Bytes(uint64(run.Bytes)),
		run.Duration().Round(time.Millisecond),
		run.ID,
		run.Seed[0], run.Seed[1])
}

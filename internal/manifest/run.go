// Package manifest records generation runs so their files can be rebuilt
// from the recorded seed.
package manifest

import (
	"time"

	"github.com/google/uuid"
	"pkg.jsn.cam/sorgen/pkg/sor"
)

// Run is one generation of a preset file
type Run struct {
	ID          string    `json:"id"`
	Preset      string    `json:"preset"`
	Path        string    `json:"path"`
	Schema      string    `json:"schema"`
	Rows        int64     `json:"rows"`
	Bytes       int64     `json:"bytes"`
	Seed        [2]uint64 `json:"seed"`
	Version     string    `json:"version"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Error       string    `json:"error,omitempty"`
}

// NewRun starts a run record stamped with the current format version
func NewRun(preset, path string, schema sor.Schema, seed1, seed2 uint64) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Preset:    preset,
		Path:      path,
		Schema:    schema.String(),
		Seed:      [2]uint64{seed1, seed2},
		Version:   FormatVersion,
		StartedAt: time.Now(),
	}
}

// Finish records the outcome of the write
func (r *Run) Finish(stats sor.Stats, err error) {
	r.Rows = stats.Rows
	r.Bytes = stats.Bytes
	r.CompletedAt = time.Now()
	if err != nil {
		r.Error = err.Error()
	}
}

// Succeeded reports whether the run completed without error
func (r *Run) Succeeded() bool {
	return !r.CompletedAt.IsZero() && r.Error == ""
}

// Duration is how long the write took, zero while unfinished
func (r *Run) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

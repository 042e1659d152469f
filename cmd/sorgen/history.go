package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/sorgen/internal/manifest"
)

func printHistory(w io.Writer, store manifest.Store) error {
	runs, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	fmt.Fprintf(w, "%-36s %-8s %12s %10s %-10s %s\n", "RUN ID", "PRESET", "ROWS", "SIZE", "STATUS", "STARTED")
	fmt.Fprintln(w, "─────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Fprintf(w, "%-36s %-8s %12s %10s %-10s %s\n",
			run.ID,
			run.Preset,
			humanize.Comma(run.Rows),
			humanize.Bytes(uint64(run.Bytes)),
			status(run),
			humanize.Time(run.StartedAt))
	}
	return nil
}

func status(run *manifest.Run) string {
	switch {
	case run.Succeeded():
		return "done"
	case run.Error != "":
		return "failed"
	default:
		return "running"
	}
}

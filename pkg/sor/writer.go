package sor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// ProgressStride is how many rows are written between progress reports
const ProgressStride = 10000

const writeBufferSize = 1 << 20

// Progress receives the number of rows written since the last report.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// Stats describes what a write produced. Rows counts generated rows; Bytes
// counts bytes the destination accepted, so after a failed flush it is less
// than the generated row data.
type Stats struct {
	Rows  int64
	Bytes int64
}

// Option configures WriteRows and WriteFile
type Option func(*writeOptions)

type writeOptions struct {
	progress Progress
}

// WithProgress reports written rows to p
func WithProgress(p Progress) Option {
	return func(o *writeOptions) {
		o.progress = p
	}
}

// WriteRows writes rows generated lines for schema to w, in order
func WriteRows(w io.Writer, r *rand.Rand, rows int64, schema Schema, opts ...Option) (Stats, error) {
	var stats Stats
	if rows < 0 {
		return stats, fmt.Errorf("%w: %d", ErrInvalidRowCount, rows)
	}

	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Progress output is best effort and never fails the write
	pending := 0
	report := func() {
		if o.progress != nil && pending > 0 {
			_ = o.progress.Add(pending)
		}
		pending = 0
	}
	defer report()

	line := make([]byte, 0, 16*len(schema)+1)
	for i := int64(0); i < rows; i++ {
		line = AppendRow(line[:0], r, schema)
		n, err := w.Write(line)
		stats.Bytes += int64(n)
		if err != nil {
			return stats, fmt.Errorf("%w %d: %w", ErrWriteFailed, i, err)
		}
		stats.Rows++

		pending++
		if pending == ProgressStride {
			report()
		}
	}

	return stats, nil
}

// WriteFile creates or truncates path and writes rows generated lines to it.
// The file is flushed and closed on every return. If writing fails partway
// the partial file is left behind and the error is returned.
func WriteFile(path string, r *rand.Rand, rows int64, schema Schema, opts ...Option) (stats Stats, err error) {
	if rows < 0 {
		return stats, fmt.Errorf("%w: %d", ErrInvalidRowCount, rows)
	}

	file, err := os.Create(path)
	if err != nil {
		return stats, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, closeErr))
		}
	}()

	stats, err = writeBuffered(file, r, rows, schema, opts...)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return stats, err
}

// writeBuffered writes through a bufio.Writer and always flushes it.
// Bytes still buffered after the flush never reached w and are not counted.
func writeBuffered(w io.Writer, r *rand.Rand, rows int64, schema Schema, opts ...Option) (Stats, error) {
	writer := bufio.NewWriterSize(w, writeBufferSize)
	stats, err := WriteRows(writer, r, rows, schema, opts...)

	// bufio keeps the first write error, so only report a flush error when it is new
	if flushErr := writer.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("failed to flush: %w", flushErr)
	}
	stats.Bytes -= int64(writer.Buffered())
	return stats, err
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"seqpar/internal/stats"
)

// Writer registries (format → handler). Register in init() blocks.
var (
	ReportWriters = map[string]func(w io.Writer, r stats.Report, header bool) error{}
	IndexWriters  = map[string]func(w io.Writer, in <-chan stats.Entry, opt IndexOptions) error{}
)

// Register helpers (idempotent last-wins)
func RegisterReport(format string, fn func(io.Writer, stats.Report, bool) error) {
	ReportWriters[format] = fn
}
func RegisterIndex(format string, fn func(io.Writer, <-chan stats.Entry, IndexOptions) error) {
	IndexWriters[format] = fn
}

// Dispatch helpers used by factories / callers.
func WriteReport(format string, w io.Writer, r stats.Report, header bool) error {
	fn, err := lookupReport(format)
	if err != nil {
		return err
	}
	return fn(w, r, header)
}

func lookupReport(format string) (func(io.Writer, stats.Report, bool) error, error) {
	fn, ok := ReportWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn, nil
}

func lookupIndex(format string) (func(io.Writer, <-chan stats.Entry, IndexOptions) error, error) {
	fn, ok := IndexWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown index format %q (no writer registered)", format)
	}
	return fn, nil
}

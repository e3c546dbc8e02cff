package writers

import (
	"io"

	"seqpar/internal/output"
	"seqpar/internal/stats"
)

// IndexOptions controls index rendering.
type IndexOptions struct {
	Sort   bool
	Header bool
}

func init() {
	RegisterIndex(output.FormatJSONL, writeIndexJSONL)
	RegisterIndex(output.FormatText, func(w io.Writer, in <-chan stats.Entry, opt IndexOptions) error {
		if !opt.Sort {
			return output.StreamIndexText(w, in, opt.Header)
		}
		buf := collect(in)
		output.SortEntries(buf)
		return output.WriteIndexText(w, buf, opt.Header)
	})
}

func collect(in <-chan stats.Entry) []stats.Entry {
	var buf []stats.Entry
	for e := range in {
		buf = append(buf, e)
	}
	return buf
}

// StartIndexWriter spins up a writer goroutine for index entries. Without
// Sort, entries are written in arrival order (batches may interleave).
func StartIndexWriter(out io.Writer, format string, opt IndexOptions, bufSize int) (chan<- stats.Entry, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan stats.Entry, bufSize)
	errCh := make(chan error, 1)

	fn, err := lookupIndex(format)
	go func() {
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		errCh <- fn(out, in, opt)
	}()
	return in, errCh
}

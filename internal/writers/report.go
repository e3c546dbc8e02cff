package writers

import (
	"io"

	"seqpar/internal/output"
	"seqpar/internal/stats"
)

func init() {
	RegisterReport(output.FormatText, output.WriteText)
	RegisterReport(output.FormatJSON, func(w io.Writer, r stats.Report, _ bool) error {
		return output.WriteJSON(w, r)
	})
}

// StartReportWriter spins up a writer goroutine for seqstat reports.
// Every report received is rendered; the header is printed once.
func StartReportWriter(out io.Writer, format string, header bool, bufSize int) (chan<- stats.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 1
	}
	in := make(chan stats.Report, bufSize)
	errCh := make(chan error, 1)

	fn, err := lookupReport(format)
	go func() {
		for r := range in {
			if err != nil {
				continue // keep draining so senders never block
			}
			err = fn(out, r, header)
			header = false
		}
		errCh <- err
	}()
	return in, errCh
}

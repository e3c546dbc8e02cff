// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"seqpar/internal/stats"
)

// WriteText prints one TSV row per stream.
func WriteText(w io.Writer, r stats.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range r.Streams {
		q := "NA"
		if mq, ok := s.Summary.MeanQual(); ok {
			q = fmt.Sprintf("%.2f", mq)
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.2f\t%.4f\t%d\t%s\n",
			s.File, s.Format,
			s.Summary.Records, s.Summary.Bases,
			s.Summary.MinLen, s.Summary.MaxLen, s.Summary.MeanLen(),
			s.Summary.GCFraction(), s.Summary.N, q,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// StreamIndexText writes index entries as TSV while they arrive.
func StreamIndexText(w io.Writer, in <-chan stats.Entry, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, IndexTSVHeader); err != nil {
			return err
		}
	}
	for e := range in {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", e.Index, e.ID); err != nil {
			return err
		}
	}
	return nil
}

// WriteIndexText writes a buffered slice of entries as TSV.
func WriteIndexText(w io.Writer, list []stats.Entry, header bool) error {
	in := make(chan stats.Entry, len(list))
	for _, e := range list {
		in <- e
	}
	close(in)
	return StreamIndexText(w, in, header)
}

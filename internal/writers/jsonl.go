// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"seqpar/internal/jsonlutil"
	"seqpar/internal/output"
	"seqpar/internal/stats"
)

// StartIndexJSONLWriter streams each index entry as one JSON line (v1).
func StartIndexJSONLWriter(out io.Writer, bufSize int) (chan<- stats.Entry, <-chan error) {
	return jsonlutil.Start[stats.Entry](out, bufSize,
		func(enc *json.Encoder, e stats.Entry) error {
			return enc.Encode(output.ToAPIIndex(e))
		},
		IsBrokenPipe,
	)
}

func writeIndexJSONL(w io.Writer, in <-chan stats.Entry, opt IndexOptions) error {
	src := in
	if opt.Sort {
		buf := collect(in)
		output.SortEntries(buf)
		ch := make(chan stats.Entry, len(buf))
		for _, e := range buf {
			ch <- e
		}
		close(ch)
		src = ch
	}
	enc, done := StartIndexJSONLWriter(w, 256)
	for e := range src {
		enc <- e
	}
	close(enc)
	return <-done
}

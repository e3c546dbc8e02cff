// internal/output/json.go
package output

import (
	"io"
	"strconv"

	"seqpar/internal/jsonutil"
	"seqpar/internal/stats"
	"seqpar/pkg/api"
)

// ToAPIStream converts one stream result to the stable wire schema (v1).
func ToAPIStream(s stats.Stream) api.StreamV1 {
	v := api.StreamV1{
		File:       s.File,
		Format:     s.Format,
		Records:    s.Summary.Records,
		Bases:      s.Summary.Bases,
		MinLen:     s.Summary.MinLen,
		MaxLen:     s.Summary.MaxLen,
		MeanLen:    s.Summary.MeanLen(),
		GC:         s.Summary.GC,
		N:          s.Summary.N,
		GCFraction: s.Summary.GCFraction(),
	}
	if q, ok := s.Summary.MeanQual(); ok {
		v.MeanQual = &q
	}
	return v
}

// ToAPIStats converts a full report.
func ToAPIStats(r stats.Report) api.StatsV1 {
	v := api.StatsV1{Mode: r.Mode, Threads: r.Threads}
	for _, s := range r.Streams {
		v.Streams = append(v.Streams, ToAPIStream(s))
	}
	if len(r.PerThread) > 0 {
		v.PerThread = make(map[string]uint64, len(r.PerThread))
		for k, n := range r.PerThread {
			v.PerThread[strconv.Itoa(k)] = n
		}
	}
	return v
}

func ToAPIIndex(e stats.Entry) api.IndexV1 {
	return api.IndexV1{Index: e.Index, ID: e.ID}
}

// WriteJSON writes a report as one pretty-indented JSON object.
func WriteJSON(w io.Writer, r stats.Report) error {
	return jsonutil.EncodePretty(w, ToAPIStats(r))
}

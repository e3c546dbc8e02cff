// pkg/api/stats_v1.go
package api

// StatsV1 is the stable JSON schema for a seqstat run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StatsV1 struct {
	Mode      string            `json:"mode"` // "single" | "paired"
	Threads   int               `json:"threads"`
	Streams   []StreamV1        `json:"streams"`
	PerThread map[string]uint64 `json:"per_thread,omitempty"`
}

// StreamV1 holds the totals of one input file.
type StreamV1 struct {
	File       string   `json:"file"`
	Format     string   `json:"format"` // "fasta" | "fastq"
	Records    uint64   `json:"records"`
	Bases      uint64   `json:"bases"`
	MinLen     uint64   `json:"min_len"`
	MaxLen     uint64   `json:"max_len"`
	MeanLen    float64  `json:"mean_len"`
	GC         uint64   `json:"gc"`
	N          uint64   `json:"n"`
	GCFraction float64  `json:"gc_fraction"`
	MeanQual   *float64 `json:"mean_qual,omitempty"` // absent for FASTA
}

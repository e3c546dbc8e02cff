package stats

// Stream is the result for one input file.
type Stream struct {
	File    string
	Format  string
	Summary Summary
}

// Report is what seqstat prints.
type Report struct {
	Mode      string // "single" or "paired"
	Threads   int
	Streams   []Stream
	PerThread map[int]uint64
}

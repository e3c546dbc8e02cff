// Package slot implements the fixed arena of record batches and the two
// queues that hand slot ownership between the producer and the workers.
//
// Ownership is carried by slot ids travelling through channels: whoever
// received an id last is the only goroutine allowed to touch that slot's
// records. No lock guards the records themselves.
package slot

import "seqpar/core/record"

// Slot is a fixed-capacity, reusable batch of records.
type Slot struct {
	records []record.Record
	n       int
	eos     bool
	seq     uint64
	offset  uint64
}

// NewSlot allocates a slot holding up to capacity records.
func NewSlot(capacity int) *Slot {
	if capacity < 1 {
		capacity = 1
	}
	return &Slot{records: make([]record.Record, capacity)}
}

// Cap is the record capacity C.
func (s *Slot) Cap() int { return len(s.records) }

// Len is the valid length; records at [Len, Cap) are stale.
func (s *Slot) Len() int { return s.n }

func (s *Slot) Full() bool { return s.n == len(s.records) }

// EOS reports whether this slot was the last one filled before the source ended.
func (s *Slot) EOS() bool { return s.eos }

// Seq is the publication sequence number (0-based, file order).
func (s *Slot) Seq() uint64 { return s.seq }

// Offset is the global index of the slot's first record.
func (s *Slot) Offset() uint64 { return s.offset }

// At returns the i-th valid record.
func (s *Slot) At(i int) *record.Record { return &s.records[i] }

// Reset prepares the slot for a new fill at the given position.
func (s *Slot) Reset(seq, offset uint64) {
	s.n = 0
	s.eos = false
	s.seq = seq
	s.offset = offset
}

// Reserve hands out the next unfilled record buffer. It is only counted once
// Commit is called, so a failed read leaves the valid length untouched.
func (s *Slot) Reserve() *record.Record { return &s.records[s.n] }

func (s *Slot) Commit() { s.n++ }

func (s *Slot) MarkEOS() { s.eos = true }

// Pair is the paired-mode unit: two sides sharing one id and one state.
type Pair struct {
	A, B *Slot
}

func NewPair(capacity int) *Pair {
	return &Pair{A: NewSlot(capacity), B: NewSlot(capacity)}
}

func (p *Pair) Reset(seq, offset uint64) {
	p.A.Reset(seq, offset)
	p.B.Reset(seq, offset)
}

// Len is the valid length of the A side. Dispatched pairs always have equal sides.
func (p *Pair) Len() int { return p.A.n }

func (p *Pair) Cap() int { return p.A.Cap() }

func (p *Pair) MarkEOS() {
	p.A.MarkEOS()
	p.B.MarkEOS()
}

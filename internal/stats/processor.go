package stats

import (
	"bytes"
	"fmt"

	"seqpar/core/parallel"
	"seqpar/core/record"
)

// totals is the state every clone of a stats processor shares.
type totals struct {
	summary *parallel.Guarded[Summary]
	records *parallel.Counter
	threads *parallel.Guarded[map[int]uint64]
}

func newTotals() *totals {
	return &totals{
		summary: parallel.NewGuarded(Summary{}),
		records: parallel.NewCounter(),
		threads: parallel.NewGuarded(map[int]uint64{}),
	}
}

func (t *totals) fold(local Summary) {
	_ = t.summary.Update(func(s *Summary) error {
		s.Merge(local)
		return nil
	})
	t.records.Add(local.Records)
}

func (t *totals) threadDone(thread int, n uint64) {
	_ = t.threads.Update(func(m *map[int]uint64) error {
		(*m)[thread] += n
		return nil
	})
}

func (t *totals) perThread() map[int]uint64 {
	out := map[int]uint64{}
	_ = t.threads.Update(func(m *map[int]uint64) error {
		for k, v := range *m {
			out[k] = v
		}
		return nil
	})
	return out
}

// SeqStats computes a Summary over a single stream. Each worker accumulates
// into its own Summary and folds it into the shared one when a batch
// completes, so a batch that fails contributes nothing.
type SeqStats struct {
	t      *totals
	local  Summary
	seen   uint64
	thread int
}

var (
	_ parallel.Processor        = (*SeqStats)(nil)
	_ parallel.BatchStarter     = (*SeqStats)(nil)
	_ parallel.BatchCompleter   = (*SeqStats)(nil)
	_ parallel.ThreadCompleter  = (*SeqStats)(nil)
	_ parallel.ThreadIdentifier = (*SeqStats)(nil)
)

func NewSeqStats() *SeqStats { return &SeqStats{t: newTotals()} }

func (s *SeqStats) Clone() parallel.Processor { return &SeqStats{t: s.t} }

func (s *SeqStats) SetThreadID(id int) { s.thread = id }
func (s *SeqStats) ThreadID() int      { return s.thread }

func (s *SeqStats) OnBatchStart(parallel.BatchInfo) { s.local = Summary{} }

func (s *SeqStats) ProcessRecord(v record.View) error {
	s.local.Add(v)
	return nil
}

func (s *SeqStats) OnBatchComplete() error {
	s.t.fold(s.local)
	s.seen += s.local.Records
	s.local = Summary{}
	return nil
}

func (s *SeqStats) OnThreadComplete() error {
	s.t.threadDone(s.thread, s.seen)
	return nil
}

// Summary is the merged result; call it after the run returns.
func (s *SeqStats) Summary() Summary { return s.t.summary.Load() }

// Progress is the number of records folded so far. Safe during a run.
func (s *SeqStats) Progress() uint64 { return s.t.records.Load() }

// PerThread maps worker id to the records it processed. Workers that
// stopped on an error are absent.
func (s *SeqStats) PerThread() map[int]uint64 { return s.t.perThread() }

// MateError reports a pair whose headers name different fragments.
type MateError struct {
	A, B string
}

func (e *MateError) Error() string {
	return fmt.Sprintf("mate mismatch: %q vs %q", e.A, e.B)
}

// PairStats computes one Summary per side of a paired stream and can verify
// that both sides carry the same fragment name.
type PairStats struct {
	a, b       *totals
	checkMates bool
	local      [2]Summary
	seen       uint64
	thread     int
}

var (
	_ parallel.PairedProcessor = (*PairStats)(nil)
	_ parallel.BatchStarter    = (*PairStats)(nil)
	_ parallel.BatchCompleter  = (*PairStats)(nil)
	_ parallel.ThreadCompleter = (*PairStats)(nil)
)

func NewPairStats(checkMates bool) *PairStats {
	return &PairStats{a: newTotals(), b: newTotals(), checkMates: checkMates}
}

func (p *PairStats) Clone() parallel.PairedProcessor {
	return &PairStats{a: p.a, b: p.b, checkMates: p.checkMates}
}

func (p *PairStats) SetThreadID(id int) { p.thread = id }
func (p *PairStats) ThreadID() int      { return p.thread }

func (p *PairStats) OnBatchStart(parallel.BatchInfo) { p.local = [2]Summary{} }

func (p *PairStats) ProcessPair(a, b record.View) error {
	if p.checkMates && !SameMate(a.Head(), b.Head()) {
		return &MateError{A: string(ID(a.Head())), B: string(ID(b.Head()))}
	}
	p.local[0].Add(a)
	p.local[1].Add(b)
	return nil
}

func (p *PairStats) OnBatchComplete() error {
	p.a.fold(p.local[0])
	p.b.fold(p.local[1])
	p.seen += p.local[0].Records
	p.local = [2]Summary{}
	return nil
}

func (p *PairStats) OnThreadComplete() error {
	p.a.threadDone(p.thread, p.seen)
	return nil
}

func (p *PairStats) Summaries() (Summary, Summary) {
	return p.a.summary.Load(), p.b.summary.Load()
}

func (p *PairStats) Progress() uint64 { return p.a.records.Load() }

func (p *PairStats) PerThread() map[int]uint64 { return p.a.perThread() }

// ID is the header up to the first blank.
func ID(head []byte) []byte {
	if i := bytes.IndexAny(head, " \t"); i >= 0 {
		return head[:i]
	}
	return head
}

// SameMate compares the fragment names of two headers, ignoring a
// trailing /1 or /2 read suffix.
func SameMate(a, b []byte) bool {
	return bytes.Equal(fragment(ID(a)), fragment(ID(b)))
}

func fragment(id []byte) []byte {
	if n := len(id); n >= 2 && id[n-2] == '/' && (id[n-1] == '1' || id[n-1] == '2') {
		return id[:n-2]
	}
	return id
}

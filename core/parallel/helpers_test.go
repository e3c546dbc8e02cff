package parallel

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	"seqpar/core/record"
)

// sliceSource serves prepared records and can fail once it reaches failAt.
type sliceSource struct {
	recs    []record.Record
	i       int
	failAt  int
	failErr error
}

func newSource(n int) *sliceSource {
	return &sliceSource{recs: makeRecords(n), failAt: -1}
}

func (s *sliceSource) Read(dst *record.Record) error {
	if s.failErr != nil && s.i == s.failAt {
		return s.failErr
	}
	if s.i >= len(s.recs) {
		return io.EOF
	}
	s.recs[s.i].CopyTo(dst)
	s.i++
	return nil
}

var bases = []byte("ACGT")

func makeRecords(n int) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		seq := make([]byte, 1+i%5)
		qual := make([]byte, len(seq))
		for j := range seq {
			seq[j] = bases[(i+j)%4]
			qual[j] = '!' + byte((i+j)%40)
		}
		out[i] = record.New(record.KindFASTQ, []byte(fmt.Sprintf("r%d extra", i)), seq, qual)
	}
	return out
}

// indexOf recovers the source position encoded in the header by makeRecords.
func indexOf(v record.View) int {
	h := v.Head()
	end := len(h)
	for i, c := range h {
		if c == ' ' {
			end = i
			break
		}
	}
	n, err := strconv.Atoi(string(h[1:end]))
	if err != nil {
		panic(err)
	}
	return n
}

// weight is the per-record value reduced by the sum tests.
func weight(v record.View) uint64 {
	var w uint64
	for i, c := range v.Seq() {
		w += uint64(c) + uint64(v.Qual()[i]-'!')
	}
	return w
}

func serialSum(n int) uint64 {
	var total uint64
	recs := makeRecords(n)
	for i := range recs {
		total += weight(&recs[i])
	}
	return total
}

type batchTrace struct {
	info BatchInfo
	idx  []int
}

// tracer records every batch it completes and when its thread finishes.
type tracer struct {
	id        int
	cur       BatchInfo
	local     []int
	completed bool

	batches *Guarded[[]batchTrace]
	exits   *Guarded[[]int]
	calls   *Counter
}

func newTracer() *tracer {
	return &tracer{
		batches: NewGuarded[[]batchTrace](nil),
		exits:   NewGuarded[[]int](nil),
		calls:   NewCounter(),
	}
}

func (t *tracer) Clone() Processor {
	c := *t
	c.local = nil
	return &c
}

func (t *tracer) SetThreadID(id int) { t.id = id }
func (t *tracer) ThreadID() int      { return t.id }

func (t *tracer) OnBatchStart(info BatchInfo) {
	t.cur = info
	t.local = t.local[:0]
}

func (t *tracer) ProcessRecord(v record.View) error {
	t.calls.Add(1)
	t.local = append(t.local, indexOf(v))
	return nil
}

func (t *tracer) OnBatchComplete() error {
	if t.completed {
		return fmt.Errorf("thread %d: batch after thread completion", t.id)
	}
	tr := batchTrace{info: t.cur, idx: append([]int(nil), t.local...)}
	return t.batches.Update(func(b *[]batchTrace) error {
		*b = append(*b, tr)
		return nil
	})
}

func (t *tracer) OnThreadComplete() error {
	t.completed = true
	return t.exits.Update(func(e *[]int) error {
		*e = append(*e, t.id)
		return nil
	})
}

// summer folds a thread-local sum into a shared counter once per batch.
type summer struct {
	local uint64
	n     uint64
	total *Counter
	count *Counter
}

func newSummer() *summer { return &summer{total: NewCounter(), count: NewCounter()} }

func (s *summer) Clone() Processor {
	c := *s
	c.local, c.n = 0, 0
	return &c
}

func (s *summer) ProcessRecord(v record.View) error {
	s.local += weight(v)
	s.n++
	return nil
}

func (s *summer) OnBatchComplete() error {
	s.total.Add(s.local)
	s.count.Add(s.n)
	s.local, s.n = 0, 0
	return nil
}

// residency counts slots between acquisition and release.
type residency struct {
	peak    *Counter
	live    *Guarded[int64]
	batches *Counter
	done    *Counter
}

func newResidency() *residency {
	return &residency{peak: NewCounter(), live: NewGuarded[int64](0), batches: NewCounter(), done: NewCounter()}
}

func (r *residency) SlotAcquired(int) {
	_ = r.live.Update(func(n *int64) error {
		*n++
		r.peak.Max(uint64(*n))
		return nil
	})
}

func (r *residency) SlotReleased(int) {
	_ = r.live.Update(func(n *int64) error {
		*n--
		return nil
	})
}

func (r *residency) BatchProcessed(int, int) { r.batches.Add(1) }
func (r *residency) WorkerDone(int)          { r.done.Add(1) }

// hooked wires plain functions to the optional hooks.
type hooked struct {
	fn       func(record.View) error
	complete func() error
	exit     func() error
}

func (h *hooked) Clone() Processor                  { return h }
func (h *hooked) ProcessRecord(v record.View) error { return h.fn(v) }

func (h *hooked) OnBatchComplete() error {
	if h.complete == nil {
		return nil
	}
	return h.complete()
}

func (h *hooked) OnThreadComplete() error {
	if h.exit == nil {
		return nil
	}
	return h.exit()
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

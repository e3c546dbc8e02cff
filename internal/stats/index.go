package stats

import (
	"seqpar/core/parallel"
	"seqpar/core/record"
)

// Entry is one line of the record index.
type Entry struct {
	Index uint64
	ID    string
}

// Sink receives a completed batch of entries. Calls are serialized, so the
// entries of one batch stay contiguous in the output. The slice is reused
// after the call returns.
type Sink func([]Entry) error

// Indexer tags every record with its global position in the stream. Batches
// complete in any order; each batch is handed to the sink in one piece.
type Indexer struct {
	sink *parallel.Guarded[Sink]
	base uint64
	buf  []Entry
}

var (
	_ parallel.Processor      = (*Indexer)(nil)
	_ parallel.BatchStarter   = (*Indexer)(nil)
	_ parallel.BatchCompleter = (*Indexer)(nil)
)

func NewIndexer(sink Sink) *Indexer {
	return &Indexer{sink: parallel.NewGuarded(sink)}
}

func (x *Indexer) Clone() parallel.Processor { return &Indexer{sink: x.sink} }

func (x *Indexer) OnBatchStart(info parallel.BatchInfo) {
	x.base = info.Offset
	x.buf = x.buf[:0]
}

func (x *Indexer) ProcessRecord(v record.View) error {
	x.buf = append(x.buf, Entry{
		Index: x.base + uint64(len(x.buf)),
		ID:    string(ID(v.Head())),
	})
	return nil
}

func (x *Indexer) OnBatchComplete() error {
	return x.sink.Update(func(s *Sink) error { return (*s)(x.buf) })
}

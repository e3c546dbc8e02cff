package parallel

import "seqpar/core/record"

// Source is the record producer contract. Read overwrites dst with the next
// record and returns io.EOF once the stream is exhausted. Any other error is
// fatal for the run.
type Source interface {
	Read(dst *record.Record) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func(dst *record.Record) error

func (f SourceFunc) Read(dst *record.Record) error { return f(dst) }

// Processor is the single-stream map step. Clone is called once per worker
// before the run starts; the clone is then used by that worker only.
type Processor interface {
	ProcessRecord(rec record.View) error
	Clone() Processor
}

// PairedProcessor is the paired-stream map step. The engine does not check
// that a and b belong together.
type PairedProcessor interface {
	ProcessPair(a, b record.View) error
	Clone() PairedProcessor
}

// BatchCompleter is the reduce step, run once after every record of a slot
// succeeded.
type BatchCompleter interface {
	OnBatchComplete() error
}

// ThreadCompleter runs once per worker after its last batch on a clean shutdown.
type ThreadCompleter interface {
	OnThreadComplete() error
}

// ThreadIdentifier receives the worker index in [0, Threads) before the
// first batch.
type ThreadIdentifier interface {
	SetThreadID(id int)
	ThreadID() int
}

// BatchInfo describes the slot a worker is about to process.
type BatchInfo struct {
	Seq    uint64 // publication order, 0-based
	Offset uint64 // global index of the first record
	Len    int
	EOS    bool
	Thread int
}

// BatchStarter is told where a batch sits in the stream before its first
// record, so record i of the batch has global index Offset+i.
type BatchStarter interface {
	OnBatchStart(info BatchInfo)
}

// RecordFunc is a stateless Processor; its clones are itself.
type RecordFunc func(rec record.View) error

func (f RecordFunc) ProcessRecord(rec record.View) error { return f(rec) }
func (f RecordFunc) Clone() Processor                    { return f }

// PairFunc is a stateless PairedProcessor.
type PairFunc func(a, b record.View) error

func (f PairFunc) ProcessPair(a, b record.View) error { return f(a, b) }
func (f PairFunc) Clone() PairedProcessor             { return f }

package parallel

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNilSource    = errors.New("parallel: nil source")
	ErrNilProcessor = errors.New("parallel: nil processor")

	// ErrDesynchronized matches every *DesyncError.
	ErrDesynchronized = errors.New("paired sources desynchronized")
)

// Stage names the Processor callback that failed.
type Stage string

const (
	StageRecord Stage = "record"
	StageBatch  Stage = "batch"
	StageThread Stage = "thread"
)

// ReadError wraps a failure returned by a Source.
type ReadError struct {
	Side   string // "", or "A"/"B" in paired mode
	Offset uint64 // global index of the record being read
	Err    error
}

func (e *ReadError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("read %s record %d: %v", e.Side, e.Offset, e.Err)
	}
	return fmt.Sprintf("read record %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ProcessError wraps a failure returned by a Processor callback.
type ProcessError struct {
	Stage  Stage
	Thread int
	Batch  uint64
	Index  uint64 // global record index; only meaningful for StageRecord
	Err    error
}

func (e *ProcessError) Error() string {
	switch e.Stage {
	case StageRecord:
		return fmt.Sprintf("process record %d (batch %d, thread %d): %v", e.Index, e.Batch, e.Thread, e.Err)
	case StageBatch:
		return fmt.Sprintf("complete batch %d (thread %d): %v", e.Batch, e.Thread, e.Err)
	default:
		return fmt.Sprintf("complete thread %d: %v", e.Thread, e.Err)
	}
}

func (e *ProcessError) Unwrap() error { return e.Err }

// DesyncError reports that one paired source ended before the other.
// ReadA and ReadB count the records each side had produced when the
// mismatch was seen.
type DesyncError struct {
	Batch        uint64
	ReadA, ReadB uint64
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("%v: batch %d, A produced %d records, B produced %d", ErrDesynchronized, e.Batch, e.ReadA, e.ReadB)
}

func (e *DesyncError) Is(target error) bool { return target == ErrDesynchronized }

// firstError keeps the first error it is given and drops the rest.
type firstError struct {
	mu  sync.Mutex
	err error
}

// set stores err if nothing was stored yet and reports whether it did.
func (f *firstError) set(err error) bool {
	if err == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false
	}
	f.err = err
	return true
}

func (f *firstError) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

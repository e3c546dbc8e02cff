package parallel

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBatchSize is the per-slot record capacity used when Config.BatchSize is 0.
const DefaultBatchSize = 1024

// Policy decides what a worker does with the rest of a slot after a record fails.
type Policy uint8

const (
	// AbortBatch skips the remaining records of the slot.
	AbortBatch Policy = iota
	// FinishBatch still runs the remaining records, then reports the first failure.
	FinishBatch
)

func (p Policy) String() string {
	switch p {
	case AbortBatch:
		return "abort"
	case FinishBatch:
		return "finish"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy accepts "abort" or "finish" (case-insensitive; empty means abort).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return AbortBatch, nil
	case "finish":
		return FinishBatch, nil
	default:
		return AbortBatch, fmt.Errorf("unknown failure policy %q (want abort|finish)", s)
	}
}

// Config controls a run. The zero value is valid.
type Config struct {
	Threads   int // worker goroutines; default 1
	Slots     int // pool size N; default 2*Threads, at least 2
	BatchSize int // records per slot C; default DefaultBatchSize
	Policy    Policy

	Logger   *zerolog.Logger // nil disables engine logs
	Observer Observer        // nil disables callbacks
}

func (c Config) withDefaults() Config {
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.Slots < 1 {
		c.Slots = 2 * c.Threads
	}
	if c.Slots < 2 {
		c.Slots = 2
	}
	if c.BatchSize < 1 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Observer == nil {
		c.Observer = nopObserver{}
	}
	return c
}

// Observer receives engine events. Calls come from the producer and worker
// goroutines concurrently.
type Observer interface {
	SlotAcquired(id int)
	SlotReleased(id int)
	BatchProcessed(thread, records int)
	WorkerDone(thread int)
}

type nopObserver struct{}

func (nopObserver) SlotAcquired(int)        {}
func (nopObserver) SlotReleased(int)        {}
func (nopObserver) BatchProcessed(int, int) {}
func (nopObserver) WorkerDone(int)          {}

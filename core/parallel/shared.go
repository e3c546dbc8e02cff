package parallel

import (
	"sync"

	"go.uber.org/atomic"
)

// Counter is shared state for sums and counts. Build one with NewCounter
// and store the pointer in the template Processor; clones then share it.
type Counter struct {
	v atomic.Uint64
}

func NewCounter() *Counter { return &Counter{} }

// Add returns the new total.
func (c *Counter) Add(n uint64) uint64 { return c.v.Add(n) }

func (c *Counter) Load() uint64 { return c.v.Load() }

// Max raises the counter to n if n is larger.
func (c *Counter) Max(n uint64) {
	for {
		old := c.v.Load()
		if n <= old || c.v.CompareAndSwap(old, n) {
			return
		}
	}
}

// Guarded is shared state that needs more than one word: every access goes
// through its mutex.
type Guarded[T any] struct {
	mu sync.Mutex
	v  T
}

func NewGuarded[T any](v T) *Guarded[T] { return &Guarded[T]{v: v} }

// Update runs fn with exclusive access to the value.
func (g *Guarded[T]) Update(fn func(*T) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(&g.v)
}

// Load returns a copy of the value.
func (g *Guarded[T]) Load() T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.v
}

package slot

import (
	"context"
	"fmt"

	"go.uber.org/atomic"
)

// State is the lifecycle tag of a slot: Free → Filling → Ready → Processing → Free.
type State uint32

const (
	Free State = iota
	Filling
	Ready
	Processing
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Filling:
		return "filling"
	case Ready:
		return "ready"
	case Processing:
		return "processing"
	default:
		return fmt.Sprintf("state(%d)", uint32(s))
	}
}

// Ticket is what travels on the ready queue: a slot id, or a stop sentinel.
type Ticket struct {
	ID   int
	Stop bool
}

// Stats is a point-in-time snapshot of pool activity.
type Stats struct {
	Slots     int
	InFlight  int64
	Peak      int64
	Acquired  uint64
	Published uint64
	Discarded uint64
	Released  uint64
}

// Pool owns N items of type S (a *Slot or a *Pair) and the queues that
// rotate their ids. The free queue is primed with every id; the ready queue
// is sized for N ids plus one stop sentinel per worker so that publishing
// never waits on a full queue.
type Pool[S any] struct {
	items  []S
	states []atomic.Uint32
	free   chan int
	ready  chan Ticket

	inFlight  atomic.Int64
	peak      atomic.Int64
	acquired  atomic.Uint64
	published atomic.Uint64
	discarded atomic.Uint64
	released  atomic.Uint64
}

// NewPool allocates n items with alloc and primes the free queue in id order.
func NewPool[S any](n, workers int, alloc func(id int) S) *Pool[S] {
	if n < 1 {
		n = 1
	}
	if workers < 0 {
		workers = 0
	}
	p := &Pool[S]{
		items:  make([]S, n),
		states: make([]atomic.Uint32, n),
		free:   make(chan int, n),
		ready:  make(chan Ticket, n+workers),
	}
	for id := range p.items {
		p.items[id] = alloc(id)
		p.free <- id
	}
	return p
}

// New builds a pool of single slots.
func New(n, capacity, workers int) *Pool[*Slot] {
	return NewPool(n, workers, func(int) *Slot { return NewSlot(capacity) })
}

// NewPaired builds a pool of paired slots.
func NewPaired(n, capacity, workers int) *Pool[*Pair] {
	return NewPool(n, workers, func(int) *Pair { return NewPair(capacity) })
}

func (p *Pool[S]) Len() int { return len(p.items) }

// Get returns item id. Only the current owner of id may call it.
func (p *Pool[S]) Get(id int) S { return p.items[id] }

func (p *Pool[S]) State(id int) State { return State(p.states[id].Load()) }

func (p *Pool[S]) transition(id int, from, to State) {
	if !p.states[id].CompareAndSwap(uint32(from), uint32(to)) {
		panic(fmt.Sprintf("slot %d: illegal transition %s -> %s (is %s)", id, from, to, p.State(id)))
	}
}

// AcquireFree blocks until a free slot is available (backpressure) and
// hands its ownership to the caller in the Filling state.
func (p *Pool[S]) AcquireFree(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	select {
	case id := <-p.free:
		p.transition(id, Free, Filling)
		p.acquired.Inc()
		p.trackPeak(p.inFlight.Inc())
		return id, nil
	case <-ctx.Done():
		return -1, ctx.Err()
	}
}

// Publish moves a filled slot to the ready queue. The caller gives up ownership.
func (p *Pool[S]) Publish(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		p.Discard(id)
		return err
	}
	p.transition(id, Filling, Ready)
	select {
	case p.ready <- Ticket{ID: id}:
		p.published.Inc()
		return nil
	case <-ctx.Done():
		// Nobody will dequeue it; take it back.
		p.transition(id, Ready, Filling)
		p.Discard(id)
		return ctx.Err()
	}
}

// Discard returns a slot that is being filled to the free queue without
// publishing it.
func (p *Pool[S]) Discard(id int) {
	p.transition(id, Filling, Free)
	p.discarded.Inc()
	p.inFlight.Dec()
	p.free <- id
}

// Shutdown publishes one stop sentinel per worker.
func (p *Pool[S]) Shutdown(ctx context.Context, workers int) error {
	for i := 0; i < workers; i++ {
		select {
		case p.ready <- Ticket{ID: -1, Stop: true}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// AcquireReady blocks until a published slot or a stop sentinel arrives.
// Slot tickets come back in the Processing state, owned by the caller.
func (p *Pool[S]) AcquireReady(ctx context.Context) (Ticket, error) {
	if err := ctx.Err(); err != nil {
		return Ticket{ID: -1}, err
	}
	select {
	case t := <-p.ready:
		if !t.Stop {
			p.transition(t.ID, Ready, Processing)
		}
		return t, nil
	case <-ctx.Done():
		return Ticket{ID: -1}, ctx.Err()
	}
}

// Release returns a processed slot to the free queue. It never blocks:
// the free queue has room for every id.
func (p *Pool[S]) Release(id int) {
	p.transition(id, Processing, Free)
	p.released.Inc()
	p.inFlight.Dec()
	p.free <- id
}

func (p *Pool[S]) trackPeak(cur int64) {
	for {
		old := p.peak.Load()
		if cur <= old || p.peak.CompareAndSwap(old, cur) {
			return
		}
	}
}

func (p *Pool[S]) Stats() Stats {
	return Stats{
		Slots:     len(p.items),
		InFlight:  p.inFlight.Load(),
		Peak:      p.peak.Load(),
		Acquired:  p.acquired.Load(),
		Published: p.published.Load(),
		Discarded: p.discarded.Load(),
		Released:  p.released.Load(),
	}
}

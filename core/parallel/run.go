package parallel

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"seqpar/core/slot"
)

// Run processes every record of src with clones of proc and returns the
// first error seen by any goroutine, or nil once the source is exhausted and
// every slot has been processed.
func Run(ctx context.Context, cfg Config, src Source, proc Processor) error {
	if src == nil {
		return ErrNilSource
	}
	if proc == nil {
		return ErrNilProcessor
	}
	cfg = cfg.withDefaults()
	r := newRunner(cfg, "single")

	workers := make([]*worker[*slot.Slot], cfg.Threads)
	for id := range workers {
		p := proc.Clone()
		w := newWorker[*slot.Slot](id, p)
		w.info = func(s *slot.Slot) BatchInfo {
			return BatchInfo{Seq: s.Seq(), Offset: s.Offset(), Len: s.Len(), EOS: s.EOS()}
		}
		w.each = func(s *slot.Slot, info BatchInfo) error {
			return forEach(s.Len(), cfg.Policy, func(i int) error {
				if err := p.ProcessRecord(s.At(i)); err != nil {
					return recordError(info, i, err)
				}
				return nil
			})
		}
		workers[id] = w
	}

	fill := func(s *slot.Slot) (bool, error) {
		for !s.Full() {
			if err := src.Read(s.Reserve()); err != nil {
				if errors.Is(err, io.EOF) {
					return true, nil
				}
				return false, &ReadError{Offset: s.Offset() + uint64(s.Len()), Err: err}
			}
			s.Commit()
		}
		return false, nil
	}

	pool := slot.New(cfg.Slots, cfg.BatchSize, cfg.Threads)
	return execute(ctx, r, pool, fill, workers)
}

// RunPaired advances a and b in lockstep, giving each worker pairs of
// records at equal positions. A source that ends before the other fails the
// run with a *DesyncError.
func RunPaired(ctx context.Context, cfg Config, a, b Source, proc PairedProcessor) error {
	if a == nil || b == nil {
		return ErrNilSource
	}
	if proc == nil {
		return ErrNilProcessor
	}
	cfg = cfg.withDefaults()
	r := newRunner(cfg, "paired")

	workers := make([]*worker[*slot.Pair], cfg.Threads)
	for id := range workers {
		p := proc.Clone()
		w := newWorker[*slot.Pair](id, p)
		w.info = func(s *slot.Pair) BatchInfo {
			return BatchInfo{Seq: s.A.Seq(), Offset: s.A.Offset(), Len: s.Len(), EOS: s.A.EOS()}
		}
		w.each = func(s *slot.Pair, info BatchInfo) error {
			return forEach(s.Len(), cfg.Policy, func(i int) error {
				if err := p.ProcessPair(s.A.At(i), s.B.At(i)); err != nil {
					return recordError(info, i, err)
				}
				return nil
			})
		}
		workers[id] = w
	}

	fill := func(s *slot.Pair) (bool, error) {
		for !s.A.Full() {
			at := s.A.Offset() + uint64(s.A.Len())
			errA := a.Read(s.A.Reserve())
			if errA != nil && !errors.Is(errA, io.EOF) {
				return false, &ReadError{Side: "A", Offset: at, Err: errA}
			}
			errB := b.Read(s.B.Reserve())
			if errB != nil && !errors.Is(errB, io.EOF) {
				return false, &ReadError{Side: "B", Offset: at, Err: errB}
			}
			endA, endB := errA != nil, errB != nil
			switch {
			case endA && endB:
				return true, nil
			case endA || endB:
				readA, readB := at, at
				if !endA {
					readA++
				}
				if !endB {
					readB++
				}
				return false, &DesyncError{Batch: s.A.Seq(), ReadA: readA, ReadB: readB}
			}
			s.A.Commit()
			s.B.Commit()
		}
		return false, nil
	}

	pool := slot.NewPaired(cfg.Slots, cfg.BatchSize, cfg.Threads)
	return execute(ctx, r, pool, fill, workers)
}

func execute[S batch](ctx context.Context, r *runner, pool *slot.Pool[S], fill fillFunc[S], workers []*worker[S]) error {
	r.log.Debug().
		Int("threads", r.cfg.Threads).
		Int("slots", r.cfg.Slots).
		Int("batch_size", r.cfg.BatchSize).
		Stringer("policy", r.cfg.Policy).
		Msg("run start")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return produce(gctx, r, pool, fill) })
	for _, w := range workers {
		w := w
		g.Go(func() error { return w.loop(gctx, r, pool) })
	}
	_ = g.Wait()

	err := r.errs.get()
	if err != nil {
		r.log.Debug().Err(err).Msg("run failed")
	} else {
		r.log.Debug().Msg("run complete")
	}
	return err
}

// runner is the state shared by the goroutines of one run.
type runner struct {
	cfg  Config
	log  zerolog.Logger
	obs  Observer
	errs firstError
}

func newRunner(cfg Config, mode string) *runner {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("run", uuid.NewString()).Str("mode", mode).Logger()
	}
	return &runner{cfg: cfg, log: log, obs: cfg.Observer}
}

// fail records err as the run's error if it is the first one and returns it.
func (r *runner) fail(err error) error {
	if r.errs.set(err) {
		r.log.Debug().Err(err).Msg("first error")
	} else {
		r.log.Debug().Err(err).Msg("later error dropped")
	}
	return err
}

func recordError(info BatchInfo, i int, err error) error {
	return &ProcessError{
		Stage:  StageRecord,
		Thread: info.Thread,
		Batch:  info.Seq,
		Index:  info.Offset + uint64(i),
		Err:    err,
	}
}

// forEach calls fn for 0..n-1 under the given failure policy.
func forEach(n int, policy Policy, fn func(i int) error) error {
	var first error
	for i := 0; i < n; i++ {
		if err := fn(i); err != nil {
			if policy != FinishBatch {
				return err
			}
			if first == nil {
				first = err
			}
		}
	}
	return first
}

var (
	_ batch = (*slot.Slot)(nil)
	_ batch = (*slot.Pair)(nil)
)

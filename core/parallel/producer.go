package parallel

import (
	"context"

	"seqpar/core/slot"
)

// batch is what the producer needs from a slot kind.
type batch interface {
	Reset(seq, offset uint64)
	Len() int
	MarkEOS()
}

// fillFunc fills s from the source(s). It reports eof when the stream ended
// during this fill; s may still hold records.
type fillFunc[S batch] func(s S) (eof bool, err error)

// produce is the single producer goroutine: acquire free slot, fill, publish,
// repeat, then one stop sentinel per worker.
func produce[S batch](ctx context.Context, r *runner, pool *slot.Pool[S], fill fillFunc[S]) error {
	var seq, offset uint64
	for {
		id, err := pool.AcquireFree(ctx)
		if err != nil {
			return r.fail(err)
		}
		r.obs.SlotAcquired(id)

		s := pool.Get(id)
		s.Reset(seq, offset)
		eof, err := fill(s)
		if err != nil {
			r.obs.SlotReleased(id)
			pool.Discard(id)
			r.fail(err)
			r.log.Debug().Err(err).Uint64("batch", seq).Msg("producer stopped; draining published slots")
			return r.shutdown(ctx, pool)
		}
		if s.Len() == 0 {
			r.obs.SlotReleased(id)
			pool.Discard(id)
			break
		}
		if eof {
			s.MarkEOS()
		}
		n := s.Len()
		if err := pool.Publish(ctx, id); err != nil {
			r.obs.SlotReleased(id)
			return r.fail(err)
		}
		seq++
		offset += uint64(n)
		if eof {
			break
		}
	}
	r.log.Debug().Uint64("batches", seq).Uint64("records", offset).Msg("end of stream")
	return r.shutdown(ctx, pool)
}

func (r *runner) shutdown(ctx context.Context, pool interface {
	Shutdown(context.Context, int) error
}) error {
	if err := pool.Shutdown(ctx, r.cfg.Threads); err != nil {
		return r.fail(err)
	}
	return nil
}

package parallel

import (
	"context"

	"seqpar/core/slot"
)

// worker is one consumer goroutine with its private processor clone.
type worker[S any] struct {
	id   int
	info func(s S) BatchInfo
	each func(s S, info BatchInfo) error

	start BatchStarter
	done  BatchCompleter
	exit  ThreadCompleter
}

// newWorker assigns the thread id and picks up the optional hooks of p.
func newWorker[S any](id int, p any) *worker[S] {
	w := &worker[S]{id: id}
	if t, ok := p.(ThreadIdentifier); ok {
		t.SetThreadID(id)
	}
	w.start, _ = p.(BatchStarter)
	w.done, _ = p.(BatchCompleter)
	w.exit, _ = p.(ThreadCompleter)
	return w
}

func (w *worker[S]) loop(ctx context.Context, r *runner, pool *slot.Pool[S]) error {
	for {
		t, err := pool.AcquireReady(ctx)
		if err != nil {
			r.log.Debug().Int("thread", w.id).Err(err).Msg("worker unwinding")
			return r.fail(err)
		}
		if t.Stop {
			if w.exit != nil {
				if err := w.exit.OnThreadComplete(); err != nil {
					return r.fail(&ProcessError{Stage: StageThread, Thread: w.id, Err: err})
				}
			}
			r.obs.WorkerDone(w.id)
			r.log.Debug().Int("thread", w.id).Msg("worker done")
			return nil
		}
		if err := w.dispatch(r, pool, t.ID); err != nil {
			return err
		}
	}
}

// dispatch runs one slot and always hands it back to the free queue.
func (w *worker[S]) dispatch(r *runner, pool *slot.Pool[S], id int) error {
	defer func() {
		r.obs.SlotReleased(id)
		pool.Release(id)
	}()

	s := pool.Get(id)
	info := w.info(s)
	info.Thread = w.id
	if w.start != nil {
		w.start.OnBatchStart(info)
	}
	if err := w.each(s, info); err != nil {
		return r.fail(err)
	}
	if w.done != nil {
		if err := w.done.OnBatchComplete(); err != nil {
			return r.fail(&ProcessError{Stage: StageBatch, Thread: w.id, Batch: info.Seq, Err: err})
		}
	}
	r.obs.BatchProcessed(w.id, info.Len)
	return nil
}

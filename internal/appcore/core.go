// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"seqpar/core/parallel"
	"seqpar/core/seqio"
	"seqpar/internal/clibase"
	"seqpar/internal/cmdutil"
	"seqpar/internal/metrics"
	"seqpar/internal/writers"
)

// Job drives the engine over the opened inputs and hands each result to send.
type Job[T any] func(ctx context.Context, cfg parallel.Config, inputs []*seqio.File, send func(T) error) error

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run wires logging, metrics, inputs and the output writer around job and
// maps the outcome to an exit code: 0 ok, 2 bad configuration, 3 runtime
// error, 130 canceled. A broken pipe on stdout counts as success.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	c clibase.Common,
	job Job[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	log, err := cmdutil.NewLogger(stderr, c.Run.LogLevel, c.Quiet, c.Verbose)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cfg, err := c.Run.Engine()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cfg.Logger = &log

	var obs *metrics.Observer
	if c.Metrics {
		obs = metrics.New("seqpar")
		cfg.Observer = obs
	}

	inputs, closeAll, err := cmdutil.OpenInputs(c.Inputs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	defer closeAll()
	for _, f := range inputs {
		if f.Format() == seqio.Unknown {
			cmdutil.Warnf(stderr, c.Quiet, "%s: empty input", f.Path)
		}
	}

	inCh, writeErr := wf.Start(outw, cfg.Threads*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := job(ctx, cfg, inputs, func(x T) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if obs != nil {
		if err := obs.WriteText(stderr); err != nil {
			cmdutil.Warnf(stderr, c.Quiet, "metrics: %v", err)
		}
	}

	werr := <-writeErr
	if werr == nil {
		werr = outw.Flush()
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	return 0
}

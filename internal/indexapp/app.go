package indexapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqpar/core/parallel"
	"seqpar/core/seqio"
	"seqpar/internal/appcore"
	"seqpar/internal/clibase"
	"seqpar/internal/cmdutil"
	"seqpar/internal/indexcli"
	"seqpar/internal/stats"
	"seqpar/internal/version"
	"seqpar/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flush := func(code int) int {
		if e := writers.IgnoreBrokenPipe(outw.Flush()); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	fs := indexcli.NewFlagSet("seqindex")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = indexcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(0)
	}

	opts, err := indexcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			indexcli.PrintExamples(outw)
			return flush(0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "seqindex version %s\n", version.Version)
		return flush(0)
	}

	wf := appcore.IndexWriterFactory{Format: opts.Output, Sort: opts.Sort, Header: opts.Header}
	return appcore.Run[stats.Entry](parent, stdout, stderr, opts.Common, indexJob, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// indexJob sends each completed batch of entries in one piece.
func indexJob(ctx context.Context, cfg parallel.Config, inputs []*seqio.File, send func(stats.Entry) error) error {
	x := stats.NewIndexer(func(batch []stats.Entry) error {
		for _, e := range batch {
			if err := send(e); err != nil {
				return err
			}
		}
		return nil
	})
	return cmdutil.RunStream(ctx, cfg, inputs, x, nil)
}

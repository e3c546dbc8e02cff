// internal/app/app.go
package app

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
	"seqpar/internal/cli"
	"seqpar/internal/clibase"
	"seqpar/internal/cmdutil"
	"seqpar/internal/stats"
	"seqpar/internal/version"
	"seqpar/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	// flush reports the exit code after writing help/version text.
	flush := func(code int) int {
		if e := writers.IgnoreBrokenPipe(outw.Flush()); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	fs := cli.NewFlagSet("seqstat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flush(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "seqstat version %s\n", version.Version)
		return flush(0)
	}

	wf := appcore.ReportWriterFactory{Format: opts.Output, Header: opts.Header}
	return appcore.Run[stats.Report](parent, stdout, stderr, opts.Common, statsJob(opts.CheckMates), wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// statsJob computes one report over a single file or a read pair.
func statsJob(checkMates bool) appcore.Job[stats.Report] {
	return func(ctx context.Context, cfg parallel.Config, inputs []*seqio.File, send func(stats.Report) error) error {
		rep := stats.Report{Threads: cfg.Threads}
		if len(inputs) == 1 {
			p := stats.NewSeqStats()
			if err := cmdutil.RunStream(ctx, cfg, inputs, p, nil); err != nil {
				return err
			}
			rep.Mode = "single"
			rep.Streams = []stats.Stream{stream(inputs[0], p.Summary())}
			rep.PerThread = p.PerThread()
			return send(rep)
		}

		p := stats.NewPairStats(checkMates)
		if err := cmdutil.RunStream(ctx, cfg, inputs, nil, p); err != nil {
			return err
		}
		a, b := p.Summaries()
		rep.Mode = "paired"
		rep.Streams = []stats.Stream{stream(inputs[0], a), stream(inputs[1], b)}
		rep.PerThread = p.PerThread()
		return send(rep)
	}
}

func stream(f *seqio.File, s stats.Summary) stats.Stream {
	return stats.Stream{File: f.Path, Format: f.Format().String(), Summary: s}
}

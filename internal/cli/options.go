// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"seqpar/internal/clibase"
	"seqpar/internal/cliutil"
	"seqpar/internal/output"
)

// Options holds all seqstat flags and arguments.
type Options struct {
	clibase.Common

	CheckMates bool
}

// Paired reports whether two inputs were given.
func (o Options) Paired() bool { return len(o.Inputs) == 2 }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "parallel FASTA/FASTQ statistics", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] reads.fq[.gz]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] R1.fq.gz R2.fq.gz   (paired)\n", name)

		_, _ = fmt.Fprintln(out, "\nPaired:")
		_, _ = fmt.Fprintf(out, "      --check-mates           Fail when R1/R2 headers name different fragments [%s]\n", def("check-mates"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for seqstat.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "seqstat",
		"Record, base, GC and quality totals over one file or a read pair.",
		"seqstat --threads 8 --check-mates",
		"--output json",
		"sample_R1.fastq.gz sample_R2.fastq.gz")
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, output.FormatText)

	fs.BoolVar(&o.CheckMates, "check-mates", false, "fail when R1/R2 headers name different fragments [false]")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(fs, &c, noHeader, posArgs, output.FormatText, output.FormatJSON); err != nil {
		return o, err
	}
	o.Common = c
	if len(o.Inputs) > 2 {
		return o, fmt.Errorf("expected one file or a pair, got %d inputs", len(o.Inputs))
	}
	if o.CheckMates && !o.Paired() {
		return o, errors.New("--check-mates needs two input files")
	}
	return o, nil
}

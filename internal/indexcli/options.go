package indexcli

import (
	"flag"
	"fmt"
	"io"

	"seqpar/internal/clibase"
	"seqpar/internal/cliutil"
	"seqpar/internal/output"
)

type Options struct {
	clibase.Common

	Sort bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "parallel record index", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] reads.fa[.gz|.zst]\n", name)

		_, _ = fmt.Fprintln(out, "\nIndex:")
		_, _ = fmt.Fprintf(out, "      --sort                  Emit entries in file order (buffers all entries) [%s]\n", def("sort"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for seqindex.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "seqindex",
		"One JSON line per record with its position in the file.",
		"seqindex --threads 4 --sort genome.fa.gz | head")
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, output.FormatJSONL)

	fs.BoolVar(&o.Sort, "sort", false, "emit entries in file order [false]")
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
	if err := clibase.AfterParse(fs, &c, noHeader, posArgs, output.FormatJSONL, output.FormatText); err != nil {
		return o, err
	}
	o.Common = c
	if len(o.Inputs) != 1 {
		return o, fmt.Errorf("expected exactly one input file, got %d", len(o.Inputs))
	}
	return o, nil
}

package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart: a one-line summary, then one example
// command whose parts are joined with shell line continuations.
func PrintExamples(out io.Writer, name, summary string, command ...string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s – quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, summary)
	if len(command) > 0 {
		_, _ = fmt.Fprintln(out, "\nExample:")
		for i, part := range command {
			indent, tail := "  ", " \\"
			if i > 0 {
				indent = "    "
			}
			if i == len(command)-1 {
				tail = ""
			}
			_, _ = fmt.Fprintf(out, "%s%s%s\n", indent, part, tail)
		}
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

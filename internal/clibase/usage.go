// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"seqpar/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, tool flags).
func UsageCommon(fs *flag.FlagSet, name, title string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n\n", name, title)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nEngine:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --slots int             Batches in memory at once (0=2×threads) [%s]\n", def("slots"))
		fmt.Fprintf(out, "      --batch-size int        Records per batch (0=1024) [%s]\n", def("batch-size"))
		fmt.Fprintf(out, "      --on-error string       On a record error: abort | finish the batch [%s]\n", def("on-error"))
		fmt.Fprintln(out, "      --config file           YAML run configuration; flags win")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output format [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --log-level string      debug | info | warn | error [warn]")
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log engine activity [%s]\n", def("verbose"))
		fmt.Fprintf(out, "      --metrics               Dump Prometheus metrics to stderr [%s]\n", def("metrics"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

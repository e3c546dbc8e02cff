// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"seqpar/internal/cliutil"
	"seqpar/internal/config"
)

// Common holds CLI fields shared by seqstat and seqindex.
type Common struct {
	// Input
	Inputs     []string
	ConfigFile string

	// Engine
	Run config.Run

	// Output
	Output string
	Header bool

	// Misc
	Quiet   bool
	Verbose bool
	Metrics bool
	Version bool

	// Set records which engine flags were given explicitly, keyed by their
	// canonical names (see config.Flag*).
	Set map[string]bool
}

// aliases maps short flag names to the canonical name they stand for.
var aliases = map[string]string{
	"t": config.FlagThreads,
	"o": "output",
	"q": "quiet",
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common, defaultOutput string) *bool {
	// Input
	fs.StringVar(&c.ConfigFile, "config", "", "YAML run configuration file")

	// Engine
	fs.IntVar(&c.Run.Threads, config.FlagThreads, 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Run.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&c.Run.Slots, config.FlagSlots, 0, "batches in memory at once (0=2×threads) [0]")
	fs.IntVar(&c.Run.BatchSize, config.FlagBatchSize, 0, "records per batch (0=1024) [0]")
	fs.StringVar(&c.Run.OnError, config.FlagOnError, "abort", "on a record error: abort | finish the batch [abort]")
	fs.StringVar(&c.Run.LogLevel, config.FlagLogLevel, "", "log level: debug | info | warn | error [warn]")

	// Output
	fs.StringVar(&c.Output, "output", defaultOutput, "output format ["+defaultOutput+"]")
	fs.StringVar(&c.Output, "o", defaultOutput, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "log engine activity (debug) [false]")
	fs.BoolVar(&c.Metrics, "metrics", false, "dump Prometheus metrics to stderr after the run [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header, records explicit flags, expands positionals,
// loads --config and runs shared validation.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool, posArgs []string, outputs ...string) error {
	c.Header = !*noHeader

	c.Set = cliutil.ExplicitFlags(fs, aliases)

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}

	if c.ConfigFile != "" {
		file, err := config.Load(c.ConfigFile)
		if err != nil {
			return err
		}
		c.Run = config.Merge(*file, c.Run, c.Set)
	}
	return Validate(c, outputs...)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, outputs ...string) error {
	if len(c.Inputs) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	if err := config.Validate(&c.Run); err != nil {
		return err
	}
	for _, o := range outputs {
		if c.Output == o {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}

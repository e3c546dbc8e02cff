// Package config loads the optional YAML run configuration shared by the
// binaries and merges it with command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"seqpar/core/parallel"
)

// Run holds the engine knobs a user may set from a file or from flags.
type Run struct {
	Threads   int    `yaml:"threads"`    // 0 = all CPUs
	Slots     int    `yaml:"slots"`      // 0 = 2*threads
	BatchSize int    `yaml:"batch_size"` // records per slot, 0 = engine default
	OnError   string `yaml:"on_error"`   // abort | finish
	LogLevel  string `yaml:"log_level"`  // zerolog level name
}

// Flag names that map onto Run fields.
const (
	FlagThreads   = "threads"
	FlagSlots     = "slots"
	FlagBatchSize = "batch-size"
	FlagOnError   = "on-error"
	FlagLogLevel  = "log-level"
)

// Load reads and parses a YAML configuration file.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Run, error) {
	var cfg Run
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func Validate(c *Run) error {
	if c.Threads < 0 {
		return errors.New("threads must be ≥ 0")
	}
	if c.Slots < 0 {
		return errors.New("slots must be ≥ 0")
	}
	if c.Slots == 1 {
		return errors.New("slots must be ≥ 2 (one filling, one in flight)")
	}
	if c.BatchSize < 0 {
		return errors.New("batch_size must be ≥ 0")
	}
	if _, err := parallel.ParsePolicy(c.OnError); err != nil {
		return err
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// Merge returns file overridden by every field of cli whose flag was set
// explicitly on the command line.
func Merge(file, cli Run, set map[string]bool) Run {
	out := file
	if set[FlagThreads] {
		out.Threads = cli.Threads
	}
	if set[FlagSlots] {
		out.Slots = cli.Slots
	}
	if set[FlagBatchSize] {
		out.BatchSize = cli.BatchSize
	}
	if set[FlagOnError] {
		out.OnError = cli.OnError
	}
	if set[FlagLogLevel] {
		out.LogLevel = cli.LogLevel
	}
	return out
}

// Engine converts c into an engine configuration; threads 0 means NumCPU.
// Logger and Observer are left for the caller.
func (c Run) Engine() (parallel.Config, error) {
	policy, err := parallel.ParsePolicy(c.OnError)
	if err != nil {
		return parallel.Config{}, err
	}
	thr := c.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	return parallel.Config{
		Threads:   thr,
		Slots:     c.Slots,
		BatchSize: c.BatchSize,
		Policy:    policy,
	}, nil
}

package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var n int
	fs.BoolVar(&b, "check-mates", false, "")
	fs.IntVar(&n, "threads", 0, "")
	flagArgs, inputs := SplitArgs(fs, []string{"R1.fq", "--threads", "4", "--check-mates", "-", "--", "-odd.fq"})
	if strings.Join(flagArgs, " ") != "--threads 4 --check-mates" {
		t.Fatalf("flags: %v", flagArgs)
	}
	if strings.Join(inputs, " ") != "R1.fq - -odd.fq" {
		t.Fatalf("inputs: %v", inputs)
	}
	if err := fs.Parse(flagArgs); err != nil || n != 4 || !b {
		t.Fatalf("parse: %v n=%d b=%v", err, n, b)
	}
}

func TestSplitArgsInlineValue(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var s string
	fs.StringVar(&s, "output", "", "")
	flagArgs, inputs := SplitArgs(fs, []string{"--output=json", "reads.fa"})
	if len(flagArgs) != 1 || len(inputs) != 1 || inputs[0] != "reads.fa" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, inputs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsRejectsDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := ExpandPositionals([]string{dir}); err == nil {
		t.Fatalf("expected directory error")
	}
	if got, err := ExpandPositionals([]string{"-", "missing.fq"}); err != nil || len(got) != 2 {
		t.Fatalf("stdin and plain paths pass through: %v %v", got, err)
	}
}

func TestExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var n int
	var s string
	fs.IntVar(&n, "threads", 0, "")
	fs.IntVar(&n, "t", 0, "")
	fs.StringVar(&s, "output", "", "")
	if err := fs.Parse([]string{"-t", "3"}); err != nil {
		t.Fatal(err)
	}
	got := ExplicitFlags(fs, map[string]string{"t": "threads"})
	if !got["threads"] || got["output"] || len(got) != 1 {
		t.Fatalf("unexpected %v", got)
	}
}

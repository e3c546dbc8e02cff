package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"seqpar/core/parallel"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := "threads: 3\nslots: 8\nbatch_size: 256\non_error: finish\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Run{Threads: 3, Slots: 8, BatchSize: 256, OnError: "finish", LogLevel: "debug"}
	if *cfg != want {
		t.Fatalf("got %+v want %+v", *cfg, want)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty doc: %v", err)
	}
	if *cfg != (Run{}) {
		t.Fatalf("want zero config, got %+v", *cfg)
	}
}

func TestParseRejects(t *testing.T) {
	bad := map[string]string{
		"unknown key":    "thread: 2\n",
		"negative":       "threads: -1\n",
		"one slot":       "slots: 1\n",
		"policy":         "on_error: retry\n",
		"log level":      "log_level: loud\n",
		"negative batch": "batch_size: -5\n",
	}
	for name, doc := range bad {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error for %q", name, doc)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMergeFlagsWin(t *testing.T) {
	file := Run{Threads: 2, Slots: 6, BatchSize: 64, OnError: "finish"}
	cli := Run{Threads: 9, Slots: 0, BatchSize: 128, OnError: "abort"}
	got := Merge(file, cli, map[string]bool{FlagThreads: true, FlagBatchSize: true})
	want := Run{Threads: 9, Slots: 6, BatchSize: 128, OnError: "finish"}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestEngine(t *testing.T) {
	ec, err := Run{Slots: 5, BatchSize: 10, OnError: "finish"}.Engine()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Threads != runtime.NumCPU() || ec.Slots != 5 || ec.BatchSize != 10 || ec.Policy != parallel.FinishBatch {
		t.Fatalf("unexpected engine config %+v", ec)
	}
}

// Package appshell is the signal-aware main shared by the binaries.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an application entry point returning a process exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with a context canceled on SIGINT/SIGTERM and exits.
// No arguments means -h.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := ExitCode(ctx, run(ctx, argv, os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}

// ExitCode normalizes a successful exit after cancellation to 130.
func ExitCode(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return 130
	}
	return code
}

package appshell

import (
	"context"
	"testing"
)

func TestExitCode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if got := ExitCode(ctx, 0); got != 0 {
		t.Fatalf("live ctx: want 0, got %d", got)
	}
	cancel()
	if got := ExitCode(ctx, 0); got != 130 {
		t.Fatalf("canceled ctx: want 130, got %d", got)
	}
	if got := ExitCode(ctx, 3); got != 3 {
		t.Fatalf("errors keep their code, got %d", got)
	}
}

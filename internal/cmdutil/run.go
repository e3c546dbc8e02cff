package cmdutil

import (
	"context"
	"errors"
	"fmt"

	"seqpar/core/parallel"
	"seqpar/core/seqio"
)

// OpenInputs opens every path. The returned func closes whatever was opened.
// Stdin ("-") may appear at most once.
func OpenInputs(paths []string) ([]*seqio.File, func(), error) {
	var files []*seqio.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	stdin := 0
	for _, p := range paths {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, func() {}, errors.New("stdin ('-') can only be read once")
	}
	for _, p := range paths {
		f, err := seqio.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
	}
	return files, closeAll, nil
}

// RunStream runs single over one input, or paired over two inputs in lockstep.
func RunStream(ctx context.Context, cfg parallel.Config, inputs []*seqio.File, single parallel.Processor, paired parallel.PairedProcessor) error {
	switch len(inputs) {
	case 1:
		if single == nil {
			return errors.New("single-stream processor required")
		}
		return parallel.Run(ctx, cfg, inputs[0], single)
	case 2:
		if paired == nil {
			return errors.New("paired processor required")
		}
		return parallel.RunPaired(ctx, cfg, inputs[0], inputs[1], paired)
	default:
		return fmt.Errorf("expected 1 or 2 inputs, got %d", len(inputs))
	}
}

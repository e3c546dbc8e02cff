package parallel

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"seqpar/core/record"
)

func collectPairs(t *testing.T) (PairFunc, *Guarded[[]int]) {
	t.Helper()
	got := NewGuarded[[]int](nil)
	return PairFunc(func(a, b record.View) error {
		ia, ib := indexOf(a), indexOf(b)
		if ia != ib {
			t.Errorf("pair out of lockstep: %d vs %d", ia, ib)
		}
		return got.Update(func(s *[]int) error {
			*s = append(*s, ia)
			return nil
		})
	}), got
}

func TestRunPaired_Lockstep(t *testing.T) {
	proc, got := collectPairs(t)
	err := RunPaired(context.Background(), Config{Threads: 3, BatchSize: 7}, newSource(250), newSource(250), proc)
	require.NoError(t, err)
	require.Len(t, got.Load(), 250)
}

func TestRunPaired_SingleWorkerOrder(t *testing.T) {
	proc, got := collectPairs(t)
	require.NoError(t, RunPaired(context.Background(), Config{Threads: 1, BatchSize: 4}, newSource(21), newSource(21), proc))
	for i, idx := range got.Load() {
		require.Equal(t, i, idx)
	}
}

func TestRunPaired_DesyncTenVersusEight(t *testing.T) {
	for _, size := range []int{3, 4, 16} {
		proc, got := collectPairs(t)
		err := RunPaired(context.Background(), Config{Threads: 2, BatchSize: size}, newSource(10), newSource(8), proc)
		require.ErrorIs(t, err, ErrDesynchronized, "C=%d", size)

		var derr *DesyncError
		require.ErrorAs(t, err, &derr)
		require.EqualValues(t, 9, derr.ReadA)
		require.EqualValues(t, 8, derr.ReadB)

		for _, idx := range got.Load() {
			require.Less(t, idx, 8, "C=%d delivered a pair past the shorter source", size)
		}
		require.Len(t, got.Load(), (8/size)*size, "only fully published slots are processed")
	}
}

func TestRunPaired_DesyncWhenBLonger(t *testing.T) {
	proc, got := collectPairs(t)
	err := RunPaired(context.Background(), Config{Threads: 1, BatchSize: 10}, newSource(5), newSource(7), proc)
	var derr *DesyncError
	require.ErrorAs(t, err, &derr)
	require.EqualValues(t, 5, derr.ReadA)
	require.EqualValues(t, 6, derr.ReadB)
	require.Empty(t, got.Load())
}

func TestRunPaired_EqualLengthsEndTogether(t *testing.T) {
	proc, got := collectPairs(t)
	require.NoError(t, RunPaired(context.Background(), Config{Threads: 2, BatchSize: 5}, newSource(10), newSource(10), proc))
	require.Len(t, got.Load(), 10)
}

func TestRunPaired_ReadErrorNamesSide(t *testing.T) {
	boom := errors.New("gzip: invalid checksum")
	b := newSource(20)
	b.failAt, b.failErr = 6, boom
	proc, got := collectPairs(t)

	err := RunPaired(context.Background(), Config{Threads: 1, BatchSize: 3}, newSource(20), b, proc)
	require.ErrorIs(t, err, boom)
	var rerr *ReadError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "B", rerr.Side)
	require.EqualValues(t, 6, rerr.Offset)
	require.Len(t, got.Load(), 6)
}

func TestRunPaired_CallerMateCheck(t *testing.T) {
	b := newSource(12)
	b.recs[7] = record.New(record.KindFASTQ, []byte("other"), []byte("A"), []byte("I"))
	errMate := errors.New("mate headers differ")
	proc := PairFunc(func(x, y record.View) error {
		if !bytes.Equal(x.Head(), y.Head()) {
			return errMate
		}
		return nil
	})

	err := RunPaired(context.Background(), Config{Threads: 2, BatchSize: 4}, newSource(12), b, proc)
	require.ErrorIs(t, err, errMate)
	var perr *ProcessError
	require.ErrorAs(t, err, &perr)
	require.EqualValues(t, 7, perr.Index)
}

func TestRunPaired_NilArguments(t *testing.T) {
	proc, _ := collectPairs(t)
	require.ErrorIs(t, RunPaired(context.Background(), Config{}, nil, newSource(1), proc), ErrNilSource)
	require.ErrorIs(t, RunPaired(context.Background(), Config{}, newSource(1), newSource(1), nil), ErrNilProcessor)
}

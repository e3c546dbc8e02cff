package fastq

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seqpar/core/record"
)

const twoReads = "@r1 1:N\nACGT\n+\nIIII\n\n@r2\nGG\n+r2\n#!\n"

func TestReader_TwoRecords(t *testing.T) {
	r := NewReader(strings.NewReader(twoReads))
	var rec record.Record

	require.NoError(t, r.Read(&rec))
	require.Equal(t, "r1 1:N", string(rec.Head()))
	require.Equal(t, "ACGT", string(rec.Seq()))
	require.Equal(t, "IIII", string(rec.Qual()))
	require.Equal(t, record.KindFASTQ, rec.Kind())

	require.NoError(t, r.Read(&rec))
	require.Equal(t, "r2", string(rec.Head()))
	require.Equal(t, "#!", string(rec.Qual()))

	require.ErrorIs(t, r.Read(&rec), io.EOF)
	require.ErrorIs(t, r.Read(&rec), io.EOF)
}

func TestReader_CRLF(t *testing.T) {
	r := NewReader(strings.NewReader("@a\r\nAC\r\n+\r\nII\r\n"))
	var rec record.Record
	require.NoError(t, r.Read(&rec))
	require.Equal(t, "AC", string(rec.Seq()))
	require.Equal(t, "II", string(rec.Qual()))
}

func TestReader_Malformed(t *testing.T) {
	cases := map[string]string{
		"no header":       "ACGT\n+\nIIII\n",
		"truncated":       "@a\nACGT\n+\n",
		"no separator":    "@a\nACGT\nIIII\nIIII\n",
		"length mismatch": "@a\nACGT\n+\nIII\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			var rec record.Record
			err := NewReader(strings.NewReader(in)).Read(&rec)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrFormat), "got %v", err)
			require.Contains(t, err.Error(), "line")
		})
	}
}

func TestReader_ErrorIsSticky(t *testing.T) {
	r := NewReader(strings.NewReader("@a\nAC\n+\nI\n@b\nAC\n+\nII\n"))
	var rec record.Record
	first := r.Read(&rec)
	require.ErrorIs(t, first, ErrFormat)
	require.Equal(t, first, r.Read(&rec))
}

package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_FASTAHasEmptyQual(t *testing.T) {
	r := New(KindFASTA, []byte("chr1 desc"), []byte("ACGT"), []byte("IIII"))
	require.Equal(t, "chr1 desc", string(r.Head()))
	require.Equal(t, "ACGT", string(r.Seq()))
	require.Empty(t, r.Qual())
	require.Equal(t, "chr1", string(r.ID()))
}

func TestRecord_FASTQKeepsQual(t *testing.T) {
	r := New(KindFASTQ, []byte("read/1"), []byte("ACG"), []byte("II#"))
	require.Equal(t, "II#", string(r.Qual()))
	require.Equal(t, 3, r.Len())
	require.Equal(t, len("read/1")+6, r.Size())
}

func TestRecord_ResetReusesBuffers(t *testing.T) {
	r := New(KindFASTQ, []byte("h"), []byte("ACGTACGT"), []byte("IIIIIIII"))
	seqCap := cap(r.seq)

	r.Reset(KindFASTA)
	require.Empty(t, r.Head())
	require.Empty(t, r.Seq())
	require.Equal(t, KindFASTA, r.Kind())

	r.AppendSeq([]byte("AC"))
	require.Equal(t, seqCap, cap(r.seq), "reset must keep the backing array")
}

func TestRecord_CopyTo(t *testing.T) {
	src := New(KindFASTQ, []byte("x y"), []byte("AC"), []byte("!!"))
	var dst Record
	src.CopyTo(&dst)
	require.Equal(t, src.Head(), dst.Head())
	require.Equal(t, src.Qual(), dst.Qual())

	// independent storage
	dst.seq[0] = 'T'
	require.Equal(t, "AC", string(src.Seq()))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "fasta", KindFASTA.String())
	require.Equal(t, "fastq", KindFASTQ.String())
	require.Equal(t, "none", KindNone.String())
}

package seqio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"seqpar/core/record"
)

const fastqText = "@r1 a\nACGT\n+\nIIII\n@r2\nGG\n+\n!!\n"
const fastaText = "\n>s1 x\nAC\nGT\n>s2\nNN\n"

func readAll(t *testing.T, f *File) []string {
	t.Helper()
	var ids []string
	var rec record.Record
	for {
		err := f.Read(&rec)
		if err == io.EOF {
			return ids
		}
		require.NoError(t, err)
		ids = append(ids, string(rec.ID())+":"+string(rec.Seq()))
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		in   string
		want Format
		err  bool
	}{
		{">a\nAC\n", FASTA, false},
		{"  \n@r\nA\n+\nI\n", FASTQ, false},
		{"", Unknown, false},
		{"\n\n", Unknown, false},
		{"ACGT\n", Unknown, true},
	}
	for _, c := range cases {
		got, err := Detect(bufio.NewReader(strings.NewReader(c.in)))
		if c.err {
			require.ErrorIs(t, err, ErrUnknownFormat, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got, c.in)
	}
}

func TestNewFile_PlainFormats(t *testing.T) {
	f, err := NewFile("mem", strings.NewReader(fastqText))
	require.NoError(t, err)
	require.Equal(t, FASTQ, f.Format())
	require.Equal(t, []string{"r1:ACGT", "r2:GG"}, readAll(t, f))

	f, err = NewFile("mem", strings.NewReader(fastaText))
	require.NoError(t, err)
	require.Equal(t, FASTA, f.Format())
	require.Equal(t, []string{"s1:ACGT", "s2:NN"}, readAll(t, f))
}

func TestNewFile_Empty(t *testing.T) {
	f, err := NewFile("mem", strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Unknown, f.Format())
	var rec record.Record
	require.Equal(t, io.EOF, f.Read(&rec))
	require.NoError(t, f.Close())
}

func TestNewFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(fastqText))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	f, err := NewFile("mem", &buf)
	require.NoError(t, err)
	require.Equal(t, FASTQ, f.Format())
	require.Equal(t, []string{"r1:ACGT", "r2:GG"}, readAll(t, f))
}

func TestOpen_ZstdFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reads.fa.zst")
	out, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(out)
	require.NoError(t, err)
	_, err = zw.Write([]byte(fastaText))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, FASTA, f.Format())
	require.Equal(t, []string{"s1:ACGT", "s2:NN"}, readAll(t, f))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.fq"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestOpen_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))
	_, err := Open(path)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

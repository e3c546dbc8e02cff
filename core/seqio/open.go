// Package seqio opens sequence files for the parallel engine: plain, gzip or
// zstd compressed, FASTA or FASTQ, from a path or stdin ("-").
package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"seqpar/core/fasta"
	"seqpar/core/fastq"
	"seqpar/core/record"
)

// Format is the detected record format.
type Format int

const (
	Unknown Format = iota
	FASTA
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned when the first non-blank byte is neither '>' nor '@'.
var ErrUnknownFormat = errors.New("seqio: unrecognized sequence format")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openReader handles "-" (stdin) and transparent decompression, detected by
// magic number or by a .gz / .zst suffix.
func openReader(path string) (io.ReadCloser, error) {
	var fh io.ReadCloser
	if path == "-" {
		fh = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		fh = f
	}
	rc, err := decompress(fh, path)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func decompress(fh io.ReadCloser, name string) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(fh, 256<<10)
	sig, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(name, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case bytes.HasPrefix(sig, zstdMagic) || strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{closerFunc(func() error { zr.Close(); return nil }), fh}}, nil
	default:
		return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
	}
}

// File is an open sequence stream. It satisfies parallel.Source.
type File struct {
	Path   string
	format Format
	src    interface {
		Read(*record.Record) error
	}
	closer io.Closer
}

// Open opens path and sniffs its format.
func Open(path string) (*File, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	f, err := newFile(path, rc)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return f, nil
}

// NewFile wraps an already-open stream (possibly compressed).
func NewFile(name string, r io.Reader) (*File, error) {
	rc, err := decompress(io.NopCloser(r), name)
	if err != nil {
		return nil, err
	}
	return newFile(name, rc)
}

func newFile(name string, rc io.ReadCloser) (*File, error) {
	br := bufio.NewReaderSize(rc, 64<<10)
	format, err := Detect(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	f := &File{Path: name, format: format, closer: rc}
	switch format {
	case FASTA:
		f.src = fasta.NewReader(br)
	case FASTQ:
		f.src = fastq.NewReader(br)
	}
	return f, nil
}

// Detect peeks at the first non-blank byte without consuming input.
// An empty stream is reported as Unknown with no error.
func Detect(br *bufio.Reader) (Format, error) {
	for n := 1; ; n++ {
		b, err := br.Peek(n)
		if len(b) < n {
			if err == io.EOF || err == nil {
				return Unknown, nil
			}
			if errors.Is(err, bufio.ErrBufferFull) {
				return Unknown, ErrUnknownFormat
			}
			return Unknown, err
		}
		switch b[n-1] {
		case ' ', '\t', '\r', '\n':
			continue
		case '>':
			return FASTA, nil
		case '@':
			return FASTQ, nil
		default:
			return Unknown, ErrUnknownFormat
		}
	}
}

func (f *File) Format() Format { return f.format }

// Read returns io.EOF immediately for an empty input.
func (f *File) Read(dst *record.Record) error {
	if f.src == nil {
		return io.EOF
	}
	return f.src.Read(dst)
}

func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Package fastq reads four-line FASTQ records into reusable record buffers.
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"seqpar/core/record"
)

// ErrFormat marks malformed or truncated FASTQ.
var ErrFormat = errors.New("fastq: malformed record")

// Reader parses '@' header, sequence, '+' separator and quality lines.
// Multi-line FASTQ is not supported.
type Reader struct {
	sc   *bufio.Scanner
	line int
	err  error
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// Read overwrites dst with the next record. It returns io.EOF after the last one.
func (r *Reader) Read(dst *record.Record) error {
	if r.err != nil {
		return r.err
	}
	if err := r.read(dst); err != nil {
		r.err = err
		return err
	}
	return nil
}

func (r *Reader) read(dst *record.Record) error {
	var line []byte
	for {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return fmt.Errorf("fastq scan: line %d: %w", r.line+1, err)
			}
			return io.EOF
		}
		r.line++
		line = bytes.TrimRight(r.sc.Bytes(), " \t\r")
		if len(line) > 0 {
			break
		}
	}
	if line[0] != '@' {
		return fmt.Errorf("%w: line %d: expected '@' header", ErrFormat, r.line)
	}
	dst.Reset(record.KindFASTQ)
	dst.SetHead(line[1:])
	start := r.line

	seq, err := r.next(start)
	if err != nil {
		return err
	}
	dst.AppendSeq(seq)

	plus, err := r.next(start)
	if err != nil {
		return err
	}
	if len(plus) == 0 || plus[0] != '+' {
		return fmt.Errorf("%w: line %d: expected '+' separator", ErrFormat, r.line)
	}

	qual, err := r.next(start)
	if err != nil {
		return err
	}
	dst.AppendQual(qual)
	if len(dst.Qual()) != len(dst.Seq()) {
		return fmt.Errorf("%w: line %d: quality length %d != sequence length %d",
			ErrFormat, r.line, len(dst.Qual()), len(dst.Seq()))
	}
	return nil
}

// next returns the following line of the record that began at line start.
func (r *Reader) next(start int) ([]byte, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, fmt.Errorf("fastq scan: line %d: %w", r.line+1, err)
		}
		return nil, fmt.Errorf("%w: record at line %d truncated", ErrFormat, start)
	}
	r.line++
	return bytes.TrimRight(r.sc.Bytes(), " \t\r"), nil
}

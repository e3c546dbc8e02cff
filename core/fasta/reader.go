// Package fasta reads FASTA records into reusable record buffers.
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"seqpar/core/record"
)

// ErrFormat marks input that is not FASTA.
var ErrFormat = errors.New("fasta: malformed input")

// Reader yields one record per '>' header. Sequence lines are concatenated
// with surrounding whitespace removed; blank lines are skipped.
type Reader struct {
	sc   *bufio.Scanner
	head []byte // header of the next record, already consumed from sc
	have bool
	line int
	err  error
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Reader{sc: sc}
}

// Read overwrites dst with the next record. It returns io.EOF after the last one.
func (r *Reader) Read(dst *record.Record) error {
	if r.err != nil {
		return r.err
	}
	if !r.have {
		if err := r.seekHeader(); err != nil {
			r.err = err
			return err
		}
	}
	dst.Reset(record.KindFASTA)
	dst.SetHead(bytes.TrimSpace(r.head))
	r.have = false

	for r.sc.Scan() {
		r.line++
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			r.head = append(r.head[:0], line[1:]...)
			r.have = true
			return nil
		}
		dst.AppendSeq(bytes.TrimSpace(line))
	}
	if err := r.sc.Err(); err != nil {
		r.err = fmt.Errorf("fasta scan: line %d: %w", r.line+1, err)
		return r.err
	}
	// Last record is complete; report EOF on the next call.
	r.err = io.EOF
	return nil
}

func (r *Reader) seekHeader() error {
	for r.sc.Scan() {
		r.line++
		line := bytes.TrimSpace(r.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			return fmt.Errorf("%w: line %d: expected '>' header", ErrFormat, r.line)
		}
		r.head = append(r.head[:0], line[1:]...)
		r.have = true
		return nil
	}
	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return io.EOF
}

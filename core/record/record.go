// Package record defines the read-only view every record source exposes to
// processors, plus the reusable storage the slot pool fills in place.
//
// A View is valid only for the duration of the callback it is handed to; the
// bytes belong to the slot and are overwritten when the slot is refilled.
package record

// Kind tags which record format a Record currently holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindFASTA
	KindFASTQ
)

func (k Kind) String() string {
	switch k {
	case KindFASTA:
		return "fasta"
	case KindFASTQ:
		return "fastq"
	default:
		return "none"
	}
}

// View is the zero-copy accessor set shared by all formats.
// Qual is empty (len 0) for formats without quality scores.
type View interface {
	Head() []byte
	Seq() []byte
	Qual() []byte
}

// Record is a reusable record buffer. Sources append into it through the
// Set*/Append* helpers; Reset keeps the backing arrays so a slot refill does
// not allocate once buffers have grown to their working size.
type Record struct {
	kind Kind
	head []byte
	seq  []byte
	qual []byte
}

var _ View = (*Record)(nil)

func (r *Record) Kind() Kind   { return r.kind }
func (r *Record) Head() []byte { return r.head }
func (r *Record) Seq() []byte  { return r.seq }

// Qual returns the quality bytes. Always empty for KindFASTA.
func (r *Record) Qual() []byte {
	if r.kind != KindFASTQ {
		return r.qual[:0]
	}
	return r.qual
}

// ID returns the header up to the first space or tab.
func (r *Record) ID() []byte {
	for i, c := range r.head {
		if c == ' ' || c == '\t' {
			return r.head[:i]
		}
	}
	return r.head
}

// Reset empties the record while keeping its buffers.
func (r *Record) Reset(kind Kind) {
	r.kind = kind
	r.head = r.head[:0]
	r.seq = r.seq[:0]
	r.qual = r.qual[:0]
}

func (r *Record) SetHead(b []byte)    { r.head = append(r.head[:0], b...) }
func (r *Record) AppendSeq(b []byte)  { r.seq = append(r.seq, b...) }
func (r *Record) AppendQual(b []byte) { r.qual = append(r.qual, b...) }

// Len is the sequence length.
func (r *Record) Len() int { return len(r.seq) }

// Size is the number of bytes currently held (header + sequence + quality).
func (r *Record) Size() int { return len(r.head) + len(r.seq) + len(r.qual) }

// New builds a standalone record; mainly useful for tests and in-memory sources.
func New(kind Kind, head, seq, qual []byte) Record {
	var r Record
	r.Reset(kind)
	r.SetHead(head)
	r.AppendSeq(seq)
	if kind == KindFASTQ {
		r.AppendQual(qual)
	}
	return r
}

// CopyTo overwrites dst with the contents of r, reusing dst's buffers.
func (r *Record) CopyTo(dst *Record) {
	dst.Reset(r.kind)
	dst.SetHead(r.head)
	dst.AppendSeq(r.seq)
	dst.AppendQual(r.qual)
}

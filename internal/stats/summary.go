// Package stats holds the processors behind seqstat and seqindex.
package stats

import "seqpar/core/record"

// Summary is a mergeable set of per-stream totals.
type Summary struct {
	Records uint64
	Bases   uint64
	GC      uint64
	N       uint64
	QualSum uint64 // phred+33 scores summed over every base
	Quals   uint64 // bases that carried a quality score
	MinLen  uint64
	MaxLen  uint64
}

// Add folds one record into s.
func (s *Summary) Add(v record.View) {
	seq := v.Seq()
	n := uint64(len(seq))
	if s.Records == 0 || n < s.MinLen {
		s.MinLen = n
	}
	if n > s.MaxLen {
		s.MaxLen = n
	}
	s.Records++
	s.Bases += n
	for _, c := range seq {
		switch c {
		case 'G', 'C', 'g', 'c', 'S', 's':
			s.GC++
		case 'N', 'n':
			s.N++
		}
	}
	qual := v.Qual()
	s.Quals += uint64(len(qual))
	for _, q := range qual {
		if q >= 33 {
			s.QualSum += uint64(q - 33)
		}
	}
}

// Merge folds o into s. Merge is associative and commutative.
func (s *Summary) Merge(o Summary) {
	if o.Records == 0 {
		return
	}
	if s.Records == 0 || o.MinLen < s.MinLen {
		s.MinLen = o.MinLen
	}
	if o.MaxLen > s.MaxLen {
		s.MaxLen = o.MaxLen
	}
	s.Records += o.Records
	s.Bases += o.Bases
	s.GC += o.GC
	s.N += o.N
	s.QualSum += o.QualSum
	s.Quals += o.Quals
}

// MeanLen is the average record length, 0 for an empty stream.
func (s Summary) MeanLen() float64 {
	if s.Records == 0 {
		return 0
	}
	return float64(s.Bases) / float64(s.Records)
}

// GCFraction ignores N calls.
func (s Summary) GCFraction() float64 {
	called := s.Bases - s.N
	if called == 0 {
		return 0
	}
	return float64(s.GC) / float64(called)
}

// MeanQual reports false when the stream carried no quality scores (FASTA).
func (s Summary) MeanQual() (float64, bool) {
	if s.Quals == 0 {
		return 0, false
	}
	return float64(s.QualSum) / float64(s.Quals), true
}

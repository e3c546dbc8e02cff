package appcore

import (
	"io"

	"seqpar/internal/stats"
	"seqpar/internal/writers"
)

// ---------------- Report writer ----------------

type ReportWriterFactory struct {
	Format string
	Header bool
}

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- stats.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, w.Header, bufSize)
}

// ---------------- Index writer ----------------

type IndexWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func (w IndexWriterFactory) Start(out io.Writer, bufSize int) (chan<- stats.Entry, <-chan error) {
	return writers.StartIndexWriter(out, w.Format, writers.IndexOptions{Sort: w.Sort, Header: w.Header}, bufSize)
}

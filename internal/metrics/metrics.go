// Package metrics exports engine activity as Prometheus metrics.
package metrics

import (
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/atomic"

	"seqpar/core/parallel"
)

// Observer implements parallel.Observer on a private registry.
type Observer struct {
	reg *prometheus.Registry

	acquired prometheus.Counter
	released prometheus.Counter
	inFlight prometheus.Gauge
	peak     prometheus.Gauge
	batches  *prometheus.CounterVec
	records  *prometheus.CounterVec
	done     prometheus.Counter

	live atomic.Int64
	max  atomic.Int64
}

var _ parallel.Observer = (*Observer)(nil)

func New(namespace string) *Observer {
	o := &Observer{
		reg: prometheus.NewRegistry(),
		acquired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "slots_acquired_total",
			Help: "Slots taken from the free queue by the producer.",
		}),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "slots_released_total",
			Help: "Slots returned to the free queue.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "slots_in_flight",
			Help: "Slots currently outside the free queue.",
		}),
		peak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "slots_in_flight_peak",
			Help: "Highest number of slots outside the free queue.",
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "batches_total",
			Help: "Batches completed, by worker.",
		}, []string{"thread"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "records_total",
			Help: "Records in completed batches, by worker.",
		}, []string{"thread"}),
		done: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "workers_done_total",
			Help: "Workers that shut down cleanly.",
		}),
	}
	o.reg.MustRegister(o.acquired, o.released, o.inFlight, o.peak, o.batches, o.records, o.done)
	return o
}

func (o *Observer) Registry() *prometheus.Registry { return o.reg }

func (o *Observer) SlotAcquired(int) {
	o.acquired.Inc()
	cur := o.live.Inc()
	o.inFlight.Set(float64(cur))
	for {
		old := o.max.Load()
		if cur <= old {
			return
		}
		if o.max.CompareAndSwap(old, cur) {
			o.peak.Set(float64(cur))
			return
		}
	}
}

func (o *Observer) SlotReleased(int) {
	o.released.Inc()
	o.inFlight.Set(float64(o.live.Dec()))
}

func (o *Observer) BatchProcessed(thread, records int) {
	label := strconv.Itoa(thread)
	o.batches.WithLabelValues(label).Inc()
	o.records.WithLabelValues(label).Add(float64(records))
}

func (o *Observer) WorkerDone(int) { o.done.Inc() }

// Peak is the highest in-flight slot count seen.
func (o *Observer) Peak() int64 { return o.max.Load() }

// WriteText dumps every metric in the Prometheus text exposition format.
func (o *Observer) WriteText(w io.Writer) error {
	mfs, err := o.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Totals sums every sample of each family, dropping labels.
func (o *Observer) Totals() (map[string]float64, error) {
	mfs, err := o.reg.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(mfs))
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			out[mf.GetName()] += value(mf.GetType(), m)
		}
	}
	return out, nil
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return 0
	}
}

// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics is a thin prometheus wrapper satisfying the
// mempool.Metrics collaborator interface.  It owns exactly three
// instruments: a latency histogram per named part of the update cycle, a
// delta histogram per named batch operation, and a gauge per named
// cardinality a caller wants exposed as a point-in-time count.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a prometheus-backed implementation of mempool.Metrics. The
// zero value is not usable; construct with New.
type Metrics struct {
	latency *prometheus.HistogramVec
	delta   *prometheus.HistogramVec
	count   *prometheus.GaugeVec
}

// New builds and registers the three instruments against reg. Passing
// prometheus.DefaultRegisterer registers against the global registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mempool",
			Name:      "latency",
			Help:      "Duration in seconds of a named part of the indexing cycle.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"part"}),
		delta: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mempool",
			Name:      "delta",
			Help:      "Size of a named batch operation applied to the index.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"type"}),
		count: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "mempool",
			Name:      "count",
			Help:      "Current value of a named cardinality tracked by the index.",
		}, []string{"type"}),
	}
	reg.MustRegister(m.latency, m.delta, m.count)
	return m
}

// ObserveLatency records the duration of one occurrence of the named part.
func (m *Metrics) ObserveLatency(part string, d time.Duration) {
	m.latency.WithLabelValues(part).Observe(d.Seconds())
}

// ObserveDelta records the size of one occurrence of the named batch
// operation.
func (m *Metrics) ObserveDelta(kind string, n int) {
	m.delta.WithLabelValues(kind).Observe(float64(n))
}

// SetCount sets the current value of the named cardinality.
func (m *Metrics) SetCount(kind string, value float64) {
	m.count.WithLabelValues(kind).Set(value)
}

// Package prommetrics exposes multregt scanner metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/multregt"
)

// Collector implements multregt.MetricsCollector on top of Prometheus
// counters and a build latency histogram.
type Collector struct {
	buildLatency *prometheus.HistogramVec
	records      prometheus.Counter
	indexed      prometheus.Counter
	queries      *prometheus.CounterVec
}

var _ multregt.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. A nil reg
// uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		buildLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "multregt_build_duration_seconds",
			Help:    "Latency of MULTREGT index builds",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "multregt_records_total",
			Help: "Normalized MULTREGT records consumed by index builds",
		}),
		indexed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "multregt_indexed_pairs_total",
			Help: "Region pairs kept by index builds",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "multregt_queries_total",
			Help: "Multiplier queries by outcome",
		}, []string{"outcome"}),
	}

	for _, m := range []prometheus.Collector{c.buildLatency, c.records, c.indexed, c.queries} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordBuild implements multregt.MetricsCollector.
func (c *Collector) RecordBuild(records, indexed int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.buildLatency.WithLabelValues(status).Observe(duration.Seconds())
	if err != nil {
		return
	}
	c.records.Add(float64(records))
	c.indexed.Add(float64(indexed))
}

// RecordQuery implements multregt.MetricsCollector.
func (c *Collector) RecordQuery(applied bool) {
	outcome := "identity"
	if applied {
		outcome = "applied"
	}
	c.queries.WithLabelValues(outcome).Inc()
}

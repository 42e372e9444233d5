package multregt

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting scanner metrics.
// Implement this interface to integrate with monitoring systems; see
// package prommetrics for a Prometheus implementation.
type MetricsCollector interface {
	// RecordBuild is called once per index build. records is the number of
	// normalized records consumed, indexed the number of lookup entries kept.
	RecordBuild(records, indexed int, duration time.Duration, err error)

	// RecordQuery is called after each multiplier query. applied reports
	// whether a record matched and was applied.
	RecordQuery(applied bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(bool)                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	RecordsConsumed atomic.Int64
	EntriesIndexed  atomic.Int64
	QueryCount      atomic.Int64
	QueryApplied    atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(records, indexed int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.RecordsConsumed.Add(int64(records))
	b.EntriesIndexed.Add(int64(indexed))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(applied bool) {
	b.QueryCount.Add(1)
	if applied {
		b.QueryApplied.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:      b.BuildCount.Load(),
		BuildErrors:     b.BuildErrors.Load(),
		BuildAvgNanos:   b.getAvgBuildNanos(),
		RecordsConsumed: b.RecordsConsumed.Load(),
		EntriesIndexed:  b.EntriesIndexed.Load(),
		QueryCount:      b.QueryCount.Load(),
		QueryApplied:    b.QueryApplied.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount      int64
	BuildErrors     int64
	BuildAvgNanos   int64
	RecordsConsumed int64
	EntriesIndexed  int64
	QueryCount      int64
	QueryApplied    int64
}

package spatialgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryCounter   prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordQuery(matched int, duration time.Duration, drained bool) {
//	    p.queryCounter.Inc()
//	    // ... record duration, abandonment rate, etc.
//	}
type MetricsCollector interface {
	// RecordBuild is called after each index build.
	// n is the number of items offered, duration the build time,
	// err is nil if successful.
	RecordBuild(n int, duration time.Duration, err error)

	// RecordQuery is called when a query iteration ends, whether the
	// consumer drained it or broke out early. matched is the number of
	// payloads delivered, duration the wall time spent iterating,
	// drained reports whether the traversal ran to completion.
	RecordQuery(matched int, duration time.Duration, drained bool)

	// RecordBatchQuery is called after each batch query.
	// queries is the number of queries attempted, duration the total
	// time taken, err is nil if all traversals finished.
	RecordBatchQuery(queries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration, bool)       {}
func (NoopMetricsCollector) RecordBatchQuery(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	QueryCount      atomic.Int64
	QueryAbandoned  atomic.Int64
	QueryMatched    atomic.Int64
	QueryTotalNanos atomic.Int64
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchQueries    atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(n int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(matched int, duration time.Duration, drained bool) {
	b.QueryCount.Add(1)
	b.QueryMatched.Add(int64(matched))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if !drained {
		b.QueryAbandoned.Add(1)
	}
}

// RecordBatchQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchQuery(queries int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchQueries.Add(int64(queries))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildAvgNanos:  b.getAvgBuildNanos(),
		QueryCount:     b.QueryCount.Load(),
		QueryAbandoned: b.QueryAbandoned.Load(),
		QueryMatched:   b.QueryMatched.Load(),
		QueryAvgNanos:  b.getAvgQueryNanos(),
		BatchCount:     b.BatchCount.Load(),
		BatchErrors:    b.BatchErrors.Load(),
		BatchQueries:   b.BatchQueries.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	QueryCount     int64
	QueryAbandoned int64
	QueryMatched   int64
	QueryAvgNanos  int64
	BatchCount     int64
	BatchErrors    int64
	BatchQueries   int64
}

package rattrig

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting evaluation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: batch workers call
// RecordEvaluate from several goroutines.
type MetricsCollector interface {
	// RecordEvaluate is called after each triangle is evaluated.
	// degenerate reports a zero quadrea, err is nil if successful.
	RecordEvaluate(duration time.Duration, degenerate bool, err error)

	// RecordBatch is called once per batch with the number of triangles
	// evaluated, how many failed and the total time taken.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEvaluate(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateDegenerate atomic.Int64
	EvaluateTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchItems         atomic.Int64
	BatchFailed        atomic.Int64
	BatchTotalNanos    atomic.Int64
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(duration time.Duration, degenerate bool, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if degenerate {
		b.EvaluateDegenerate.Add(1)
	}
	if err != nil {
		b.EvaluateErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	EvaluateCount      int64
	EvaluateErrors     int64
	EvaluateDegenerate int64
	EvaluateAvgNanos   int64
	BatchCount         int64
	BatchItems         int64
	BatchFailed        int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.EvaluateCount.Load()
	var avg int64
	if count > 0 {
		avg = b.EvaluateTotalNanos.Load() / count
	}
	return BasicMetricsStats{
		EvaluateCount:      count,
		EvaluateErrors:     b.EvaluateErrors.Load(),
		EvaluateDegenerate: b.EvaluateDegenerate.Load(),
		EvaluateAvgNanos:   avg,
		BatchCount:         b.BatchCount.Load(),
		BatchItems:         b.BatchItems.Load(),
		BatchFailed:        b.BatchFailed.Load(),
	}
}

// Reset clears all counters.
func (b *BasicMetricsCollector) Reset() {
	b.EvaluateCount.Store(0)
	b.EvaluateErrors.Store(0)
	b.EvaluateDegenerate.Store(0)
	b.EvaluateTotalNanos.Store(0)
	b.BatchCount.Store(0)
	b.BatchItems.Store(0)
	b.BatchFailed.Store(0)
	b.BatchTotalNanos.Store(0)
}

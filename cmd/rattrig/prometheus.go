package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements rattrig.MetricsCollector.
type PrometheusCollector struct {
	evalLatency *prometheus.HistogramVec
	triangles   *prometheus.CounterVec
	batches     prometheus.Counter
	batchRows   prometheus.Counter
	batchFailed prometheus.Counter
	batchTime   prometheus.Histogram
}

// NewPrometheusCollector creates the collector and registers its metrics with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		evalLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rattrig_evaluate_latency_seconds",
			Help:    "Latency of single triangle evaluations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"status"}),
		triangles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rattrig_triangles_total",
			Help: "Triangles evaluated, by outcome",
		}, []string{"outcome"}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rattrig_batches_total",
			Help: "Batches completed",
		}),
		batchRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rattrig_batch_rows_total",
			Help: "Rows seen by completed batches",
		}),
		batchFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rattrig_batch_failed_rows_total",
			Help: "Rows with an evaluation error in completed batches",
		}),
		batchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rattrig_batch_duration_seconds",
			Help:    "Wall time of whole batches",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.evalLatency, c.triangles, c.batches, c.batchRows, c.batchFailed, c.batchTime)
	return c
}

func (c *PrometheusCollector) RecordEvaluate(d time.Duration, degenerate bool, err error) {
	status := "success"
	outcome := "ok"
	switch {
	case err != nil:
		status = "error"
		outcome = "failed"
	case degenerate:
		outcome = "degenerate"
	}
	c.evalLatency.WithLabelValues(status).Observe(d.Seconds())
	c.triangles.WithLabelValues(outcome).Inc()
}

func (c *PrometheusCollector) RecordBatch(count, failed int, d time.Duration) {
	c.batches.Inc()
	c.batchRows.Add(float64(count))
	c.batchFailed.Add(float64(failed))
	c.batchTime.Observe(d.Seconds())
}

package batch

import (
	"runtime"

	"github.com/hupe1980/rattrig"
	"github.com/hupe1980/rattrig/codec"
)

// DefaultChunkSize is the number of rows decoded and evaluated at a time by Run.
const DefaultChunkSize = 4096

type options struct {
	workers          int
	rateLimit        float64
	chunkSize        int
	codec            codec.Codec
	logger           *rattrig.Logger
	metricsCollector rattrig.MetricsCollector
}

func defaultOptions() options {
	return options{
		workers:          runtime.GOMAXPROCS(0),
		chunkSize:        DefaultChunkSize,
		codec:            codec.Default,
		logger:           rattrig.NoopLogger(),
		metricsCollector: rattrig.NoopMetricsCollector{},
	}
}

// Option configures an Evaluator.
type Option func(*options)

// WithWorkers sets the number of triangles evaluated concurrently.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithRateLimit caps evaluation throughput at rowsPerSec triangles per second.
// Zero or a negative value disables the limit (default).
func WithRateLimit(rowsPerSec float64) Option {
	return func(o *options) {
		o.rateLimit = rowsPerSec
	}
}

// WithChunkSize sets how many rows Run keeps in memory at once.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithCodec configures the codec used for input and output lines.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *rattrig.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = rattrig.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rattrig.BasicMetricsCollector{}
//	ev := batch.New(numeric.ParseRat, batch.WithMetricsCollector(metrics))
//	// ... run batches ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc rattrig.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = rattrig.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

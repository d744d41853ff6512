package simex

import (
	"golang.org/x/exp/rand"
)

type options struct {
	logger   *Logger
	metrics  MetricsCollector
	noiseSrc rand.Source
}

// Option configures a DiffractionData handle.
//
// Options exist to keep the constructor surface small; the zero
// configuration (no-op logger, no-op metrics, time-seeded noise) is fully
// functional.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// WithLogger sets the structured logger for operation tracing.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets a metrics collector for monitoring retrieval
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithNoiseSeed seeds the Poisson noise source for deterministic output.
// Without it the source is seeded from the clock.
func WithNoiseSeed(seed uint64) Option {
	return func(o *options) {
		o.noiseSrc = rand.NewSource(seed)
	}
}

// WithRandomSource supplies the random source used for Poisson noise.
// Overrides WithNoiseSeed.
func WithRandomSource(src rand.Source) Option {
	return func(o *options) {
		o.noiseSrc = src
	}
}

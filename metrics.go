package simex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each index specification resolution.
	// selected is the size of the canonical selection, err is nil on success.
	RecordResolve(selected int, err error)

	// RecordFetch is called after each single-pattern fetch from the store.
	RecordFetch(duration time.Duration, err error)

	// RecordRead is called after each eager retrieval. count is the number
	// of patterns returned, duration the total time taken.
	RecordRead(count int, duration time.Duration, err error)

	// RecordStream is called when a streamed retrieval finishes or is
	// abandoned. yielded is the number of patterns produced.
	RecordStream(yielded int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(int, error)               {}
func (NoopMetricsCollector) RecordFetch(time.Duration, error)       {}
func (NoopMetricsCollector) RecordRead(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordStream(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount     atomic.Int64
	ResolveErrors    atomic.Int64
	FetchCount       atomic.Int64
	FetchErrors      atomic.Int64
	FetchTotalNanos  atomic.Int64
	ReadCount        atomic.Int64
	ReadErrors       atomic.Int64
	ReadPatterns     atomic.Int64
	ReadTotalNanos   atomic.Int64
	StreamCount      atomic.Int64
	StreamErrors     atomic.Int64
	StreamPatterns   atomic.Int64
	StreamTotalNanos atomic.Int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(selected int, err error) {
	b.ResolveCount.Add(1)
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(duration time.Duration, err error) {
	b.FetchCount.Add(1)
	b.FetchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FetchErrors.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(count int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadPatterns.Add(int64(count))
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordStream implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStream(yielded int, duration time.Duration, err error) {
	b.StreamCount.Add(1)
	b.StreamPatterns.Add(int64(yielded))
	b.StreamTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StreamErrors.Add(1)
	}
}

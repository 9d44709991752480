package catalog

import (
	"time"
)

// Option defines a functional option for configuring a Catalog.
type Option func(*Catalog) error

// WithLogger sets the logger for the Catalog.
// The logger will receive messages at different levels:
//
// Debug level: lookups and read views
// Info level: successful mutations (add, remove, lend, retract)
// Warn level: rejected lends, which do not change state
// Error level: invalid arguments and lookup misses.
func WithLogger(logger Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			return ErrNilOption
		}

		c.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Catalog.
// It receives the same messages as the Logger plus the operation context for trace correlation.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			return ErrNilOption
		}

		c.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Catalog.
// It receives operation durations, operation and error counts, and the lent/available gauges.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *Catalog) error {
		if collector == nil {
			return ErrNilOption
		}

		c.metricsCollector = collector

		return nil
	}
}

// WithTracing sets the tracing collector for the Catalog.
// One span is created per catalog operation.
func WithTracing(collector TracingCollector) Option {
	return func(c *Catalog) error {
		if collector == nil {
			return ErrNilOption
		}

		c.tracingCollector = collector

		return nil
	}
}

// WithClock replaces the clock used to timestamp journal entries.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) error {
		if now == nil {
			return ErrNilOption
		}

		c.now = now

		return nil
	}
}

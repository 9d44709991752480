// Package testdoubles provides test doubles (spies) for the catalog observability interfaces.
//
// This package contains spy implementations used by catalog tests:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures tracing spans with their start and finish attributes
//   - ContextualLoggerSpy: captures context-aware logging calls
//   - LogHandlerSpy: a slog.Handler that captures records, for the plain Logger path
//
// These test doubles enable testing the observability instrumentation
// without requiring actual telemetry backends.
package testdoubles

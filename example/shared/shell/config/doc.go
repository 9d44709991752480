// Package config builds the observability stack for the library catalog demo.
//
// It wires OpenTelemetry tracer and meter providers with stdout exporters and
// a JSON slog logger, so the demo can show the spans, metrics and log records
// the catalog produces without any external backend.
//
// This package is part of the shell (infrastructure) layer.
package config

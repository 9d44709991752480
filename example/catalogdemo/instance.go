package main

import (
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
)

const instrumentationName = "github.com/AntonStoeckl/library-catalog-go/catalog"

// GetInstance returns the process-wide catalog, creating it on first use.
// The observability stack is taken from the global OpenTelemetry providers as they
// are configured at that moment.
var GetInstance = sync.OnceValues(func() (*catalog.Catalog, error) {
	return catalog.New(
		catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger(instrumentationName)),
		catalog.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))),
		catalog.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))),
	)
})

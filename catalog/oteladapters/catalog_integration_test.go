package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
)

func Test_Catalog_WithOpenTelemetryAdapters(t *testing.T) {
	ctx := context.Background()

	spanExporter := tracetest.NewInMemoryExporter()
	tracerProvider := trace.NewTracerProvider(trace.WithSyncer(spanExporter))
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	lib, err := catalog.New(
		catalog.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("catalog"))),
		catalog.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("catalog"))),
	)
	require.NoError(t, err)

	book, err := catalog.NewBook("Half of a yellow sun", "Chimamanda", 170)
	require.NoError(t, err)
	id, err := lib.Add(ctx, book)
	require.NoError(t, err)

	_, err = lib.Lend(ctx, catalog.NewBorrower("Chijioke"), id)
	require.NoError(t, err)
	result, err := lib.Lend(ctx, catalog.NewBorrower("Vic"), id)
	require.NoError(t, err)
	assert.ErrorIs(t, result.HasError(), catalog.ErrAlreadyLent)

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 3)
	assert.Equal(t, "catalog.add", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[1].Status.Code)
	assert.Equal(t, codes.Unset, spans[2].Status.Code, "a rejected lend is not a span error")

	resourceMetrics := collect(t, reader)

	operations := findCounterMetric(t, resourceMetrics, catalog.OperationsMetric)
	total := int64(0)
	for _, dataPoint := range operations.DataPoints {
		total += dataPoint.Value
	}
	assert.Equal(t, int64(3), total)

	lent := findGaugeMetric(t, resourceMetrics, catalog.BooksLentMetric)
	require.Len(t, lent.DataPoints, 1)
	assert.Equal(t, float64(1), lent.DataPoints[0].Value)
}

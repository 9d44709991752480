package config_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	"github.com/AntonStoeckl/library-catalog-go/example/shared/shell/config"
)

func Test_NewObservabilityConfig_WritesSpansAndLogs(t *testing.T) {
	var logs, traces bytes.Buffer

	providers, err := config.NewObservabilityConfig(context.Background(), config.ObservabilityOptions{
		ServiceName: "catalog-test",
		LogOutput:   &logs,
		TraceOutput: &traces,
	})
	require.NoError(t, err)

	_, span := providers.TracerProvider.Tracer("test").Start(context.Background(), "catalog.add")
	span.End()
	providers.Logger.Info("new book created")

	require.NoError(t, providers.Shutdown())

	assert.Contains(t, traces.String(), `"Name":"catalog.add"`)
	assert.Contains(t, traces.String(), "catalog-test")
	assert.Contains(t, logs.String(), "new book created")
}

func Test_NewObservabilityConfig_CatalogLogsReachTheLogExporter(t *testing.T) {
	var logs bytes.Buffer

	providers, err := config.NewObservabilityConfig(context.Background(), config.ObservabilityOptions{
		ServiceName: "catalog-test",
		LogOutput:   &logs,
	})
	require.NoError(t, err)

	lib, err := catalog.New(catalog.WithContextualLogger(oteladapters.NewSlogBridgeLogger("catalog-test")))
	require.NoError(t, err)

	book, err := catalog.NewBook("Rich dad", "Robert Kiyosaki", 400)
	require.NoError(t, err)
	_, err = lib.Add(context.Background(), book)
	require.NoError(t, err)

	require.NoError(t, providers.Shutdown())

	assert.Contains(t, logs.String(), "catalog operation: add")
	assert.Contains(t, logs.String(), book.ID().String())
}

func Test_NewObservabilityConfig_DefaultsDiscardOutput(t *testing.T) {
	providers, err := config.NewObservabilityConfig(context.Background(), config.ObservabilityOptions{})
	require.NoError(t, err)

	assert.NotNil(t, providers.Resource)
	assert.NotNil(t, providers.LoggerProvider)
	assert.NotNil(t, providers.Logger)
	assert.NoError(t, providers.Shutdown())
}

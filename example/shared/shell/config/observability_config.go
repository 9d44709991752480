package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	defaultServiceName    = "library-catalog-demo"
	defaultServiceVersion = "dev"
	shutdownTimeout       = 5 * time.Second
)

// ObservabilityOptions controls where the demo writes its telemetry.
// Nil writers discard the corresponding signal.
type ObservabilityOptions struct {
	ServiceName    string
	ServiceVersion string
	LogOutput      io.Writer
	TraceOutput    io.Writer
	MetricOutput   io.Writer
}

// ObservabilityProviders holds the OpenTelemetry providers and the slog logger of the demo.
// Logger writes through the OpenTelemetry slog bridge into LoggerProvider.
type ObservabilityProviders struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Resource       *resource.Resource
	Logger         *slog.Logger
}

// NewObservabilityConfig creates OpenTelemetry providers that export spans, metrics and log records
// with the stdout exporters, plus a slog logger bridged to the log provider.
// The providers are also registered globally.
func NewObservabilityConfig(ctx context.Context, opts ObservabilityOptions) (*ObservabilityProviders, error) {
	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	serviceVersion := opts.ServiceVersion
	if serviceVersion == "" {
		serviceVersion = defaultServiceVersion
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, errors.Join(errors.New("failed to create resource"), err)
	}

	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(writerOrDiscard(opts.TraceOutput)))
	if err != nil {
		return nil, errors.Join(errors.New("failed to create trace exporter"), err)
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithSyncer(traceExporter),
		trace.WithResource(res),
	)

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(writerOrDiscard(opts.MetricOutput)))
	if err != nil {
		return nil, errors.Join(errors.New("failed to create metric exporter"), err)
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter,
			metric.WithInterval(5*time.Second))),
		metric.WithResource(res),
	)

	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(writerOrDiscard(opts.LogOutput)))
	if err != nil {
		return nil, errors.Join(errors.New("failed to create log exporter"), err)
	}

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	global.SetLoggerProvider(loggerProvider)

	logger := otelslog.NewLogger(serviceName, otelslog.WithLoggerProvider(loggerProvider))

	return &ObservabilityProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		LoggerProvider: loggerProvider,
		Resource:       res,
		Logger:         logger,
	}, nil
}

// Shutdown flushes pending telemetry and shuts down the providers.
func (p *ObservabilityProviders) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}

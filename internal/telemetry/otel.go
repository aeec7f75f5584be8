package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blaisecz/cycle-tracker/internal/config"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// stdoutWriter receives spans when OTEL_TRACES_EXPORTER=stdout.
var stdoutWriter io.Writer = os.Stderr

// InitTracer installs the global tracer provider and W3C trace-context
// propagation. Spans go to the OTLP endpoint, or to stderr with the stdout
// exporter. Without either the default no-op provider stays.
func InitTracer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Shutdown, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if exporter == nil {
		log.Info().Msg("Tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info().Str("exporter", exporterName(cfg)).Str("endpoint", cfg.OTLPEndpoint).Msg("Tracing enabled")
	return tp.Shutdown, nil
}

func exporterName(cfg *config.Config) string {
	if cfg.TracesExporter == "" {
		return config.TracesExporterOTLP
	}
	return cfg.TracesExporter
}

// newExporter returns nil when tracing is off.
func newExporter(ctx context.Context, cfg *config.Config) (sdktrace.SpanExporter, error) {
	switch exporterName(cfg) {
	case config.TracesExporterNone:
		return nil, nil
	case config.TracesExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(stdoutWriter))
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		return exp, nil
	case config.TracesExporterOTLP:
		if cfg.OTLPEndpoint == "" {
			return nil, nil
		}
		endpoint := strings.TrimSuffix(cfg.OTLPEndpoint, "/") + "/v1/traces"
		exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
		if err != nil {
			return nil, fmt.Errorf("create OTLP exporter: %w", err)
		}
		return exp, nil
	default:
		return nil, fmt.Errorf("unknown OTEL_TRACES_EXPORTER %q", cfg.TracesExporter)
	}
}

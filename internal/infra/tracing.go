package infra

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/app/appconfig"
	"github.com/epmviz/backend/internal/pkg/bininfo"
	"github.com/epmviz/backend/internal/pkg/observability"
)

// TracerProvider sets up OpenTelemetry tracing when enabled; otherwise it
// provides nil.
func TracerProvider(conf *appconfig.Config, lc fx.Lifecycle) (*tracesdk.TracerProvider, error) {
	if !conf.TracingEnabled {
		return nil, nil
	}

	var (
		exporter tracesdk.SpanExporter
		err      error
	)
	switch conf.TracingExporter {
	case appconfig.TracingExporterStdout:
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	default:
		// endpoint and credentials come from the OTEL_EXPORTER_OTLP_* environment variables
		exporter, err = otlptracegrpc.New(context.Background())
	}
	if err != nil {
		log.Error().Err(err).Str("exporter", conf.TracingExporter).Msg("infra: tracing: failed to create exporter")
		return nil, errors.Wrap(err, "create trace exporter")
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(observability.ServiceName),
			semconv.ServiceVersion(bininfo.Version),
			attribute.Bool("dev", conf.DevMode),
		)),
	)
	otel.SetTracerProvider(tp)

	lc.Append(fx.StopHook(tp.Shutdown))

	return tp, nil
}

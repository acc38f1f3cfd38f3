package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/fx"

	"github.com/soil-insights/soilboard/internal/app/appconfig"
	"github.com/soil-insights/soilboard/internal/pkg/bininfo"
	"github.com/soil-insights/soilboard/internal/pkg/observability"
)

// TracerProvider sets up the global OpenTelemetry tracer provider. It returns nil when
// tracing is disabled.
func TracerProvider(conf *appconfig.Config, lc fx.Lifecycle) (*tracesdk.TracerProvider, error) {
	if !conf.TracingEnabled {
		return nil, nil
	}

	env := "production"
	if conf.DevMode {
		env = "dev"
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			attribute.String("environment", env),
		)),
	}

	for _, name := range conf.TracingExporters {
		var exporter tracesdk.SpanExporter
		var err error
		switch name {
		case appconfig.TracingExporterOTLP:
			// endpoint and headers come from the standard OTEL_EXPORTER_OTLP_* environment variables
			exporter, err = otlptracegrpc.New(context.Background())
		case appconfig.TracingExporterStdout:
			exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		default:
			err = errors.Errorf("unknown tracing exporter %q", name)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create %s tracing exporter", name)
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	log.Info().
		Strs("exporters", conf.TracingExporters).
		Float64("sample_rate", conf.TracingSampleRate).
		Msg("OpenTelemetry tracing enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}

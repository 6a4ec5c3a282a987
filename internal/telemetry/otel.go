package telemetry

import (
	"context"
	"strings"

	"github.com/blaisecz/schedule-builder/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracer initializes the global OpenTelemetry tracer provider.
// If no OTLP endpoint is configured, this function is a no-op.
func InitTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if cfg.OTLPEndpoint == "" {
		// Keep default noop tracer provider.
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint)}
	if headers := ParseHeaders(cfg.OTLPHeaders); len(headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// ParseHeaders reads the OTEL_EXPORTER_OTLP_HEADERS "k1=v1,k2=v2" format.
// Malformed pairs are skipped.
func ParseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers
}

// Package telemetry configures OpenTelemetry tracing for signup.
package telemetry

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope used by signup packages.
const TracerName = "signup"

// Provider owns the process tracer provider.
type Provider struct {
	sdk *sdktrace.TracerProvider
}

// Setup installs a global tracer provider exporting over OTLP/HTTP to
// endpoint. An empty endpoint installs a no-op provider.
func Setup(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return &Provider{}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create otlp exporter")
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(sdk)
	return &Provider{sdk: sdk}, nil
}

// Tracer returns the signup tracer from the global provider.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(TracerName)
}

// Shutdown flushes and stops the exporter, if any.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

// Package trace exports loginbox session transitions as OpenTelemetry spans.
package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName is the tracer name used for session spans.
const InstrumentationName = "loginbox/session"

// Provider owns the tracer used by the UI. A Provider without an SDK
// provider hands out a no-op tracer.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewProvider creates an OTLP-backed provider if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// The value is a URL such as http://localhost:4318; the /v1/traces path is appended.
// Otherwise tracing is disabled and a no-op provider is returned.
func NewProvider(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(endpoint)...)
	if err != nil {
		return nil, err
	}

	return newSDKProvider(sdktrace.WithBatcher(exporter)), nil
}

// exporterOptions builds the otlptracehttp options for an endpoint URL.
func exporterOptions(endpoint string) []otlptracehttp.Option {
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(strings.TrimRight(endpoint, "/") + "/v1/traces"),
	}
}

// NewProviderWithExporter creates a provider that exports each span synchronously.
// Used for tests and the render command.
func NewProviderWithExporter(exporter sdktrace.SpanExporter) *Provider {
	return newSDKProvider(sdktrace.WithSyncer(exporter))
}

// Disabled returns a provider whose tracer records nothing.
func Disabled() *Provider {
	return &Provider{
		tracer: noop.NewTracerProvider().Tracer(InstrumentationName),
	}
}

func newSDKProvider(opt sdktrace.TracerProviderOption) *Provider {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "loginbox"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the session tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return Disabled().tracer
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Package telemetry sets up OpenTelemetry tracing for outbound relay calls.
package telemetry

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

// EndpointEnv is consulted when no endpoint is configured.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Config selects the exporter.
type Config struct {
	Endpoint    string // host:port or URL; empty falls back to EndpointEnv
	ServiceName string
}

// Provider hands out tracers. When export is disabled its tracers are no-ops.
type Provider struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// NewProvider creates an OTLP/HTTP exporting provider if an endpoint is
// configured, otherwise a disabled one.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv(EndpointEnv)
	}
	if endpoint == "" {
		return &Provider{}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "folio"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return &Provider{
		provider: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		),
		enabled: true,
	}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool { return p != nil && p.enabled }

// Tracer returns a named tracer.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if !p.Enabled() {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

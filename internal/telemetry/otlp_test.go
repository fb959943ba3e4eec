package telemetry

import (
	"context"
	"testing"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	p, err := NewProvider(context.Background(), Config{})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Enabled() {
		t.Error("expected disabled provider")
	}
	_, span := p.Tracer("x").Start(context.Background(), "op")
	if span.SpanContext().IsValid() {
		t.Error("disabled provider should produce non-recording spans")
	}
	span.End()
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewProvider_EnabledWithEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Endpoint: "localhost:4318", ServiceName: "folio-test"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if !p.Enabled() {
		t.Fatal("expected enabled provider")
	}
	_, span := p.Tracer("x").Start(context.Background(), "op")
	if !span.SpanContext().IsValid() {
		t.Error("expected a real span")
	}
	span.End()

	// Nothing listens on the endpoint; shutdown must still return.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestProvider_NilIsDisabled(t *testing.T) {
	var p *Provider
	if p.Enabled() {
		t.Error("nil provider should be disabled")
	}
	if p.Tracer("x") == nil {
		t.Error("nil provider should still hand out tracers")
	}
}

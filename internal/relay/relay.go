// Package relay sends contact submissions to an EmailJS-compatible mail relay.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public EmailJS send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// DefaultTimeout bounds one send when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// DefaultRatePerMinute caps sends when Config.RatePerMinute is zero.
const DefaultRatePerMinute = 6

// maxErrorBody is how much of a failed response is kept for the error text.
const maxErrorBody = 512

// Config holds relay credentials and limits. Empty credentials are sent as-is;
// the relay rejects them and the caller sees an ordinary failure.
type Config struct {
	Endpoint      string
	ServiceID     string
	TemplateID    string
	PublicKey     string
	Timeout       time.Duration
	RatePerMinute float64
}

// Message is one contact submission.
type Message struct {
	ID    string // correlation id for logs and traces
	Name  string
	Email string
	Body  string
}

// StatusError is returned when the relay answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("relay returned %d", e.Code)
	}
	return fmt.Sprintf("relay returned %d: %s", e.Code, e.Body)
}

type payload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Client posts messages to the relay. Safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	tracer  oteltrace.Tracer
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client (tests point it at httptest servers).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLimiter replaces the send limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithTracer sets the tracer used for send spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a Client for cfg.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = DefaultRatePerMinute
	}
	c := &Client{
		cfg:     cfg,
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerMinute/60), 1),
		tracer:  otel.Tracer("folio/relay"),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send delivers m once. There is no retry; any failure is returned.
func (c *Client) Send(ctx context.Context, m Message) (err error) {
	ctx, span := c.tracer.Start(ctx, "relay.send",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("folio.submission.id", m.ID),
			attribute.String("folio.relay.service_id", c.cfg.ServiceID),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("relay throttled: %w", err)
	}

	body, err := json.Marshal(payload{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.PublicKey,
		TemplateParams: templateParams{
			Name:    m.Name,
			Email:   m.Email,
			Message: m.Body,
		},
	})
	if err != nil {
		return fmt.Errorf("encoding relay request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("relay send failed", zap.String("id", m.ID), zap.Error(err))
		return fmt.Errorf("sending to relay: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("relay rejected message",
			zap.String("id", m.ID),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	c.logger.Info("relay accepted message", zap.String("id", m.ID), zap.Duration("elapsed", time.Since(start)))
	return nil
}

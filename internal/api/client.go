// Package api talks to the remote form endpoint: one GET for the selection
// lists and one POST to create the account.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"signup/internal/form"
	"signup/internal/logger"
	"signup/internal/telemetry"
)

// RequestIDHeader carries a per-request uuid, also written to the log.
const RequestIDHeader = "X-Request-Id"

//go:generate mockgen -package mockapi -source=client.go -destination=mock/mockapi.go

// Client is the remote form API.
type Client interface {
	// FetchOptions returns the occupation and state lists.
	FetchOptions(ctx context.Context) (form.Options, error)
	// Submit creates the account and returns the decoded response.
	Submit(ctx context.Context, p form.Payload) (form.Account, error)
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// HTTPClient implements Client over HTTP. It is safe for concurrent use.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
	tracer     oteltrace.Tracer
	newID      func() string
}

// Ensure HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.httpClient = c }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.httpClient.Timeout = d }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(h *HTTPClient) { h.tracer = t }
}

// NewHTTPClient returns a client for endpoint.
func NewHTTPClient(endpoint string, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		tracer:     telemetry.Tracer(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FetchOptions implements Client.
func (h *HTTPClient) FetchOptions(ctx context.Context) (form.Options, error) {
	ctx, span := h.tracer.Start(ctx, "signup.fetch_options")
	defer span.End()

	body, err := h.do(ctx, span, http.MethodGet, nil)
	if err != nil {
		return form.Options{}, fail(span, errors.Wrap(err, "fetch options"))
	}
	opts, err := form.DecodeOptions(body)
	if err != nil {
		return form.Options{}, fail(span, err)
	}
	span.SetAttributes(
		attribute.Int("signup.occupations", len(opts.Occupations)),
		attribute.Int("signup.states", len(opts.States)),
	)
	logger.Debug(ctx, "options fetched",
		zap.Int("occupations", len(opts.Occupations)),
		zap.Int("states", len(opts.States)))
	return opts, nil
}

// Submit implements Client. Exactly one request is issued; there is no retry.
func (h *HTTPClient) Submit(ctx context.Context, p form.Payload) (form.Account, error) {
	ctx, span := h.tracer.Start(ctx, "signup.submit")
	defer span.End()

	var e jx.Encoder
	p.Encode(&e)

	body, err := h.do(ctx, span, http.MethodPost, e.Bytes())
	if err != nil {
		return form.Account{}, fail(span, errors.Wrap(err, "submit"))
	}
	acc, err := form.DecodeAccount(body)
	if err != nil {
		return form.Account{}, fail(span, err)
	}
	logger.Info(ctx, "account created", zap.String("name", acc.Name))
	return acc, nil
}

func (h *HTTPClient) do(ctx context.Context, span oteltrace.Span, method string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, h.endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	id := h.newID()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx = logger.WithFields(ctx,
		zap.String("request_id", id),
		zap.String("method", method),
		zap.String("endpoint", h.endpoint))
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", h.endpoint),
		attribute.String("signup.request_id", id),
	)

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "request failed", zap.Error(err))
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	logger.Debug(ctx, "response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return b, nil
}

func fail(span oteltrace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

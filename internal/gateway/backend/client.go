// Package backend is the gateway's HTTP client for the contact service.
// It classifies backend responses into domain error codes so resolvers
// can shape results without looking at HTTP statuses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	gatewaymetrics "contacthub/internal/gateway/metrics"
	"contacthub/internal/sentinel"
	dErrors "contacthub/pkg/domain-errors"
)

// Client issues REST calls to the contact service. Each resolver step
// makes one synchronous call (two for update); no retries or timeouts
// are applied beyond what the injected http.Client carries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *slog.Logger
	metrics    *gatewaymetrics.Metrics
}

// Option configures the client.
type Option func(c *Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics injects Prometheus metrics.
func WithMetrics(m *gatewaymetrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracer allows injecting a custom OpenTelemetry tracer. By default
// the global tracer provider is used.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New creates a contact service client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer("contacthub/gateway")
	}
	return c
}

// ListContacts fetches all contact records in canonical case.
func (c *Client) ListContacts(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.do(ctx, "list_contacts", http.MethodGet, "/contacts", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContact fetches a single contact record by its local ID.
func (c *Client) GetContact(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, "get_contact", http.MethodGet, "/contacts/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateContact creates a contact from a canonical-case payload.
func (c *Client) CreateContact(ctx context.Context, payload map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, "create_contact", http.MethodPost, "/contacts", payload, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateContact replaces a contact with a full canonical-case payload.
func (c *Client) UpdateContact(ctx context.Context, id string, payload map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, "update_contact", http.MethodPut, "/contacts/"+url.PathEscape(id), payload, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContact removes a contact by its local ID.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, "delete_contact", http.MethodDelete, "/contacts/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, operation, method, path string, body any, wantStatus int, out any) error {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "backend."+operation, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	))
	err := c.doRequest(ctx, method, path, body, wantStatus, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "backend request failed",
			"operation", operation,
			"error", err,
		)
	}
	span.End()
	c.observe(operation, start, err)
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, fmt.Sprintf("contact service unreachable: %v", err))
	}
	defer resp.Body.Close() //nolint:errcheck // response body drained below

	if resp.StatusCode != wantStatus {
		return c.classify(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, fmt.Sprintf("decode contact service response: %v", err))
	}
	return nil
}

// classify maps backend error statuses onto domain codes. The contact
// service reports duplicate contacts with 400 and validation failures
// with 422; its detail message is preserved for resolver diagnostics.
func (c *Client) classify(resp *http.Response) error {
	detail := errorDetail(resp)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, detail)
	case http.StatusBadRequest:
		return dErrors.New(dErrors.CodeConflict, detail)
	case http.StatusUnprocessableEntity:
		return dErrors.New(dErrors.CodeValidation, detail)
	default:
		msg := fmt.Sprintf("contact service returned status %d", resp.StatusCode)
		if detail != "" {
			msg = fmt.Sprintf("%s: %s", msg, detail)
		}
		return dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable, msg)
	}
}

func errorDetail(resp *http.Response) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.BackendRequests.WithLabelValues(operation).Inc()
	c.metrics.BackendLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.BackendErrors.WithLabelValues(operation, string(dErrors.CodeOf(err))).Inc()
	}
}

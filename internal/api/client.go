// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 5 * time.Second

	// maxBodyBytes caps how much of a response body is read into memory.
	maxBodyBytes = 4 << 20
)

// Client is the single HTTP transport every workflow goes through. It owns
// header injection, the per-request timeout, rate limiting and error
// classification; callers deal only in decoded values and *Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	limiter    *rate.Limiter
	tracer     trace.Tracer
	log        *zerolog.Logger
}

// NewClient creates a transport bound to one API base URL and one session.
func NewClient(baseURL string, session *Session, log *zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		session:    session,
		limiter:    rate.NewLimiter(rate.Limit(20), 40),
		tracer:     otel.Tracer("eventpass/api"),
		log:        log,
	}
}

// Session exposes the token holder so workflows (login, logout) can manage
// its lifecycle.
func (c *Client) Session() *Session {
	return c.session
}

type requestOptions struct {
	public         bool
	idempotencyKey string
}

// RequestOption tweaks a single request.
type RequestOption func(*requestOptions)

// Public marks a request as not requiring the bearer token (login,
// register and similar endpoints).
func Public() RequestOption {
	return func(o *requestOptions) { o.public = true }
}

// WithIdempotencyKey attaches a client-generated key so the server can
// collapse duplicate submissions of the same request.
func WithIdempotencyKey(key string) RequestOption {
	return func(o *requestOptions) { o.idempotencyKey = key }
}

// Get issues a GET and decodes the response into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, opts...)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, opts...)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, opts...)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...RequestOption) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if !options.public && !c.session.Authenticated() {
		return NewDomainError("not authenticated")
	}

	ctx, span := c.tracer.Start(ctx, "api.request",
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		),
	)
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		return classifyTransport(err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnknown, msg: "failed to encode request", cause: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindUnknown, msg: "failed to build request", cause: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !options.public {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}
	if options.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", options.idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := classifyTransport(err)
		span.SetAttributes(attribute.String("error.kind", apiErr.Kind.String()))
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return apiErr
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Kind: KindTransport, msg: fmt.Sprintf("request failed: %v", err), cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := classifyRejection(resp.StatusCode, raw)
		c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request rejected")
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return newSchemaError(err)
		}
	}
	return nil
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/growlog/internal/logging"
)

const (
	contentTypeJSON = "application/json"
	maxResponseSize = 4 << 20
)

// Client is the transport-agnostic contract the feature services depend on.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	ExchangeGoogleToken(ctx context.Context, req GoogleExchangeRequest) (*AuthResponse, error)
}

type APIClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

type options struct {
	transport http.RoundTripper
	userAgent string
	log       logging.Logger
}

type Option func(*options)

// WithTransport replaces the underlying round tripper (default
// http.DefaultTransport). The bearer middleware still wraps it.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewAPIClient returns a client bound to baseURL. Every request is bounded by
// timeout and carries the bearer token tokens reports at send time.
func NewAPIClient(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %s", timeout)
	}

	o := options{transport: http.DefaultTransport, userAgent: "growlog-cli", log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return &APIClient{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: o.transport, tokens: tokens, userAgent: o.userAgent},
		},
		log: o.log.With("component", "api"),
	}, nil
}

func (c *APIClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *APIClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *APIClient) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *APIClient) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *APIClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// resolve appends path (which may carry a query string) to the base URL's
// path, so a base of https://host/api and "/diary?page=2" yields
// https://host/api/diary?page=2.
func (c *APIClient) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	u.RawPath = ""
	u.RawQuery = ref.RawQuery
	return u.String(), nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	reqURL, err := c.resolve(path)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, &TransportError{Err: err})
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request", "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, &TransportError{Err: err})
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %w", method, path, parseAPIError(resp.StatusCode, respBody))
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// Package tly is a client for the T.LY URL Shortener API.
//
// Every exported method maps to exactly one remote endpoint: the client builds
// an authenticated request, issues it once, and returns the parsed response.
// All substantive logic (shortening, stats aggregation, QR rendering) lives on
// the remote service; nothing is cached or retried here.
package tly

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

	"github.com/tlyhq/tly-cli/pkg/logger"
	"github.com/tlyhq/tly-cli/pkg/networking"
	"github.com/tlyhq/tly-cli/pkg/versions"
)

const (
	// DefaultBaseURL is the production T.LY API endpoint.
	DefaultBaseURL = "https://api.t.ly"

	// DefaultTimeout is the timeout applied to each API request.
	DefaultTimeout = networking.HttpTimeout

	contentTypeJSON = "application/json"
)

// Client issues authenticated requests against the T.LY API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL       string
	userAgent     string
	timeout       time.Duration
	caCertPath    string
	tokenFilePath string
	allowHTTP     bool
	httpClient    *http.Client
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithCABundle sets a CA certificate bundle for TLS verification.
func WithCABundle(path string) Option {
	return func(o *clientOptions) {
		o.caCertPath = path
	}
}

// WithTokenFromFile reads the bearer token from a file instead of taking it
// directly. The file is read once, when the client is built.
func WithTokenFromFile(path string) Option {
	return func(o *clientOptions) {
		o.tokenFilePath = path
	}
}

// WithAllowHTTP permits plain-HTTP base URLs. Used by tests talking to local
// servers; the production API is HTTPS only.
func WithAllowHTTP(allow bool) Option {
	return func(o *clientOptions) {
		o.allowHTTP = allow
	}
}

// WithHTTPClient supplies a fully-configured *http.Client. The caller is then
// responsible for installing the bearer-token transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// New creates a T.LY API client authenticated with the given token. The token
// may be empty when WithTokenFromFile supplies one instead.
func New(token string, opts ...Option) (*Client, error) {
	options := &clientOptions{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent(),
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}

	if token == "" && options.tokenFilePath == "" {
		return nil, fmt.Errorf("api token is required")
	}

	httpClient := options.httpClient
	if httpClient == nil {
		builder := networking.NewHttpClientBuilder().
			WithTimeout(options.timeout).
			WithCABundle(options.caCertPath).
			WithAllowHTTP(options.allowHTTP)
		if token != "" {
			builder = builder.WithBearerToken(token)
		} else {
			builder = builder.WithTokenFromFile(options.tokenFilePath)
		}

		var err error
		httpClient, err = builder.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build HTTP client: %w", err)
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		userAgent:  options.userAgent,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the API base URL the client is configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOption configures a single API request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	query   url.Values
	body    any
	headers http.Header
}

func newRequestOptions() *requestOptions {
	return &requestOptions{
		query:   make(url.Values),
		headers: make(http.Header),
	}
}

// WithQuery merges the given values into the request query string.
func WithQuery(query url.Values) RequestOption {
	return func(opts *requestOptions) {
		for key, values := range query {
			for _, value := range values {
				opts.query.Add(key, value)
			}
		}
	}
}

// WithQueryParam adds a single query parameter.
func WithQueryParam(key, value string) RequestOption {
	return func(opts *requestOptions) {
		opts.query.Add(key, value)
	}
}

// WithJSONBody sets the request body, serialized as JSON.
func WithJSONBody(body any) RequestOption {
	return func(opts *requestOptions) {
		opts.body = body
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(opts *requestOptions) {
		opts.headers.Set(key, value)
	}
}

// Do performs a single API request and returns the raw response body.
// Non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, opts ...RequestOption) ([]byte, http.Header, error) {
	options := newRequestOptions()
	for _, opt := range opts {
		opt(options)
	}

	requestURL := c.baseURL + normalizePath(path)
	if len(options.query) > 0 {
		requestURL += "?" + options.query.Encode()
	}

	var bodyReader io.Reader
	if options.body != nil {
		payload, err := json.Marshal(options.body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if options.headers.Get("Accept") == "" {
		options.headers.Set("Accept", contentTypeJSON)
	}
	if options.body != nil && options.headers.Get("Content-Type") == "" {
		options.headers.Set("Content-Type", contentTypeJSON)
	}
	options.headers.Set("User-Agent", c.userAgent)
	for key, values := range options.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	logger.Debugw("sending API request", "method", method, "url", requestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body),
			Body:       string(body),
			URL:        requestURL,
		}
	}

	return body, resp.Header, nil
}

// doJSON performs an API request and parses the JSON response body into T.
// Empty response bodies decode to the zero value.
func doJSON[T any](ctx context.Context, c *Client, method, path string, opts ...RequestOption) (T, error) {
	var result T

	body, _, err := c.Do(ctx, method, path, opts...)
	if err != nil {
		return result, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return result, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

func defaultUserAgent() string {
	return fmt.Sprintf("tly-cli/%s", versions.GetVersionInfo().Version)
}

// addIndexedParams appends values using the API's indexed array convention,
// e.g. tag_ids[0]=1&tag_ids[1]=2.
func addIndexedParams(query url.Values, key string, values []string) {
	for idx, value := range values {
		query.Add(fmt.Sprintf("%s[%d]", key, idx), value)
	}
}

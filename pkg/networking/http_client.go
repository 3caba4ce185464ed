// Package networking provides the HTTP plumbing shared by the tly SDK and CLI.
package networking

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HttpTimeout is the timeout for outgoing HTTP requests
const HttpTimeout = 30 * time.Second

// RequestIDHeader carries a per-request correlation ID.
const RequestIDHeader = "X-Request-Id"

// ValidatingTransport is for validating URLs prior to request
type ValidatingTransport struct {
	Transport http.RoundTripper

	// AllowHTTP permits plain-HTTP URLs. Used by tests talking to local servers.
	AllowHTTP bool
}

// RoundTrip validates the request URL prior to forwarding
func (t *ValidatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	parsedUrl, err := url.Parse(req.URL.String())
	if err != nil {
		return nil, fmt.Errorf("the supplied URL %s is malformed", req.URL.String())
	}

	// Check for HTTPS scheme
	if parsedUrl.Scheme != "https" && !t.AllowHTTP {
		return nil, fmt.Errorf("the supplied URL %s is not HTTPS scheme", req.URL.String())
	}

	return t.Transport.RoundTrip(req)
}

// requestIDTransport stamps each outgoing request with a correlation ID so
// failed calls can be matched against the vendor's request logs.
type requestIDTransport struct {
	transport http.RoundTripper
}

// RoundTrip adds the request ID header and forwards the request
func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	newReq := req.Clone(req.Context())
	if newReq.Header.Get(RequestIDHeader) == "" {
		newReq.Header.Set(RequestIDHeader, uuid.NewString())
	}

	return t.transport.RoundTrip(newReq)
}

// authenticatedTransport adds Bearer token authentication to HTTP requests
type authenticatedTransport struct {
	transport http.RoundTripper
	token     string
}

// newAuthenticatedTransportFromFile creates a new authenticatedTransport with token from file
func newAuthenticatedTransportFromFile(transport http.RoundTripper, tokenFile string) (*authenticatedTransport, error) {
	token, err := os.ReadFile(tokenFile) // #nosec G304 - tokenFile path is provided by user via CLI flag
	if err != nil {
		return nil, fmt.Errorf("failed to read auth token file: %w", err)
	}

	// Remove any trailing newlines/whitespace
	tokenStr := strings.TrimSpace(string(token))
	if tokenStr == "" {
		return nil, fmt.Errorf("auth token file is empty")
	}

	return &authenticatedTransport{
		transport: transport,
		token:     tokenStr,
	}, nil
}

// RoundTrip adds the Authorization header and forwards the request
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	newReq := req.Clone(req.Context())
	newReq.Header.Set("Authorization", "Bearer "+t.token)

	return t.transport.RoundTrip(newReq)
}

// HttpClientBuilder provides a fluent interface for building HTTP clients
type HttpClientBuilder struct {
	clientTimeout         time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration
	caCertPath            string
	authToken             string
	authTokenFile         string
	allowHTTP             bool
}

// NewHttpClientBuilder returns a new HttpClientBuilder
func NewHttpClientBuilder() *HttpClientBuilder {
	return &HttpClientBuilder{
		clientTimeout:         HttpTimeout,
		tlsHandshakeTimeout:   10 * time.Second,
		responseHeaderTimeout: 10 * time.Second,
	}
}

// WithTimeout sets the overall client timeout
func (b *HttpClientBuilder) WithTimeout(timeout time.Duration) *HttpClientBuilder {
	if timeout > 0 {
		b.clientTimeout = timeout
	}
	return b
}

// WithCABundle sets the CA certificate bundle path
func (b *HttpClientBuilder) WithCABundle(path string) *HttpClientBuilder {
	b.caCertPath = path
	return b
}

// WithBearerToken sets the auth token used for the Authorization header
func (b *HttpClientBuilder) WithBearerToken(token string) *HttpClientBuilder {
	b.authToken = token
	return b
}

// WithTokenFromFile sets the auth token file path
func (b *HttpClientBuilder) WithTokenFromFile(path string) *HttpClientBuilder {
	b.authTokenFile = path
	return b
}

// WithAllowHTTP allows plain-HTTP URLs
func (b *HttpClientBuilder) WithAllowHTTP(allow bool) *HttpClientBuilder {
	b.allowHTTP = allow
	return b
}

// Build creates the configured HTTP client
func (b *HttpClientBuilder) Build() (*http.Client, error) {
	transport := &http.Transport{
		TLSHandshakeTimeout:   b.tlsHandshakeTimeout,
		ResponseHeaderTimeout: b.responseHeaderTimeout,
	}

	if b.caCertPath != "" {
		caCert, err := os.ReadFile(b.caCertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate bundle: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA certificate bundle")
		}

		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}
		transport.TLSClientConfig.RootCAs = caCertPool
	}

	// Start with validation transport
	var clientTransport http.RoundTripper = &ValidatingTransport{
		Transport: transport,
		AllowHTTP: b.allowHTTP,
	}

	clientTransport = &requestIDTransport{transport: clientTransport}

	// Add auth transport if a token or token file is provided
	if b.authToken != "" {
		clientTransport = &authenticatedTransport{
			transport: clientTransport,
			token:     b.authToken,
		}
	} else if b.authTokenFile != "" {
		transportWithToken, err := newAuthenticatedTransportFromFile(clientTransport, b.authTokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create auth transport: %w", err)
		}
		clientTransport = transportWithToken
	}

	client := &http.Client{
		Transport: clientTransport,
		Timeout:   b.clientTimeout,
	}

	return client, nil
}

package jackalpin

import (
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://pinapi.jackalprotocol.com/api"
	defaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Trailing slashes are trimmed.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-call timeout, spanning connection through
// response body. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

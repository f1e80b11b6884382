package jackalpin

import (
	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// Client is the JackalPin API client.
type Client struct {
	api *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})
}

// New creates a JackalPin client. The API key may be empty: only
// tokenless endpoints such as [Client.GetQueueSize] then accept calls,
// and every other operation fails with ErrUnauthorized before touching
// the network. Keys can be resolved ahead of time with [ConfigFromEnv]
// and passed here explicitly.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// SetAPIKey replaces the bearer token used by subsequent calls.
// Safe for concurrent use.
func (c *Client) SetAPIKey(key string) {
	c.api.SetAPIKey(key)
}

// BaseURL returns the base URL the client calls.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

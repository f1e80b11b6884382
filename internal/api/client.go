package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Default client settings for the hosted service.
const (
	DefaultBaseURL = "https://pinapi.jackalprotocol.com/api"
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings for an API client.
type Config struct {
	// BaseURL is the root of the API. Required. Trailing slashes are trimmed.
	BaseURL string
	// APIKey is the bearer token. Optional: an empty key leaves requests
	// unauthenticated, which only tokenless endpoints accept.
	APIKey string
	// Timeout bounds each call from connection through response body.
	// Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the transport. When nil a client is built
	// from Timeout.
	HTTPClient *http.Client
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	mu     sync.RWMutex
	apiKey string
}

// NewClient creates an API client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	} else if cfg.Timeout == 0 && httpClient.Timeout > 0 {
		timeout = httpClient.Timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
		apiKey:     cfg.APIKey,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetAPIKey replaces the bearer token used by subsequent calls.
// Safe for concurrent use.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// Request describes one API call.
type Request struct {
	Method string
	// Path is relative to the base URL; a leading slash is tolerated.
	Path string
	// Query is appended to the URL; nil or empty adds nothing.
	Query url.Values
	// Body is JSON-encoded when non-nil. Ignored when Files are present.
	Body any
	// Files switches the call to multipart/form-data encoding.
	Files []Upload
	// NoAuth marks endpoints that work without a key. A configured key
	// is still sent.
	NoAuth bool
}

// Upload is one file part of a multipart request. The reader is
// consumed fully into memory when the request is encoded.
type Upload struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Do executes one API call and decodes the response into result.
// A nil result discards the response body. Failures are *Error values:
// calls that require a key fail with KindUnauthorized before any network
// activity when none is configured, and every other failure surfaces
// after a single complete round trip.
func (c *Client) Do(ctx context.Context, req *Request, result any) error {
	token := c.token()
	if !req.NoAuth && token == "" {
		return &Error{
			Kind:       KindUnauthorized,
			Message:    ErrUnauthorized.Error(),
			StatusCode: http.StatusUnauthorized,
		}
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.requestURL(req), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	return handleResponse(resp, result)
}

// requestURL joins the base URL and the request path. Leading slashes on
// the path are stripped so the base path's trailing segment survives
// resolution, making "/files" and "files" equivalent.
func (c *Client) requestURL(req *Request) string {
	u := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

// encodeBody produces the request body and its content type. Multipart
// encoding wins when file parts are present; the JSON body is ignored
// for that call.
func encodeBody(req *Request) (io.Reader, string, error) {
	if len(req.Files) > 0 {
		return encodeMultipart(req.Files)
	}
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshal request body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
	return nil, "", nil
}

func encodeMultipart(files []Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		filename := f.Filename
		if filename == "" {
			filename = "file"
		}
		part, err := w.CreateFormFile(f.Field, filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("read upload %q: %w", filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// classifyTransportError separates deadline expiry from other transport
// failures. Both the configured client timeout and a caller-supplied
// context deadline count as timeouts.
func (c *Client) classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("request timed out after %v", c.timeout),
			Err:     err,
		}
	}
	return &Error{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

// handleResponse decodes a successful response into result or classifies
// the failure. A 204 succeeds immediately without touching result.
func handleResponse(resp *http.Response, result any) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("read response body: %v", err),
			Err:     err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result == nil {
			return nil
		}
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	payload := decodePayload(body)
	return newStatusError(resp.StatusCode, errorMessage(payload, resp.StatusCode), payload)
}

// decodePayload decodes an error body as JSON, wrapping the raw text as
// {"message": <text>} when it is not valid JSON.
func decodePayload(body []byte) any {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return map[string]any{"message": string(body)}
	}
	return payload
}

// errorMessage extracts the message field from a decoded payload, or
// synthesizes one from the status code.
func errorMessage(payload any, status int) string {
	if m, ok := payload.(map[string]any); ok {
		switch v := m["message"].(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			return fmt.Sprint(v)
		}
	}
	return fmt.Sprintf("HTTP Error %d: %s", status, http.StatusText(status))
}

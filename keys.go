package jackalpin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// Key is a newly created API key. The secret is only returned at
// creation time, never on listings.
type Key struct {
	Name   string `json:"name"`
	Secret string `json:"key"`
}

// KeyInfo describes an existing API key.
type KeyInfo struct {
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// KeyList is one page of API keys with the total count across all pages.
type KeyList struct {
	Keys  []KeyInfo `json:"keys"`
	Count int       `json:"count"`
}

// ListKeysOptions narrows a ListKeys call. Zero-valued fields are
// omitted from the query string.
type ListKeysOptions struct {
	Page  int
	Limit int
}

func (o *ListKeysOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// CheckKey verifies the configured API key and returns the server's
// confirmation message.
func (c *Client) CheckKey(ctx context.Context) (string, error) {
	var result struct {
		Message string `json:"message"`
	}
	if err := c.api.Do(ctx, &api.Request{Method: http.MethodGet, Path: "/test"}, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// ListKeys lists the account's API keys.
func (c *Client) ListKeys(ctx context.Context, opts *ListKeysOptions) (*KeyList, error) {
	var result KeyList
	req := &api.Request{Method: http.MethodGet, Path: "/keys", Query: opts.query()}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateKey creates a named API key and returns it with its secret.
func (c *Client) CreateKey(ctx context.Context, name string) (*Key, error) {
	path := fmt.Sprintf("/keys/%s", url.PathEscape(name))
	var result Key
	if err := c.api.Do(ctx, &api.Request{Method: http.MethodPost, Path: path}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteKey deletes a named API key.
func (c *Client) DeleteKey(ctx context.Context, name string) error {
	path := fmt.Sprintf("/keys/%s", url.PathEscape(name))
	return c.api.Do(ctx, &api.Request{Method: http.MethodDelete, Path: path}, nil)
}

package jackalpin

import (
	"context"
	"net/http"

	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// AccountUsage reports storage consumption against the account's quota.
type AccountUsage struct {
	BytesUsed    int64 `json:"bytes_used"`
	BytesAllowed int64 `json:"bytes_allowed"`
}

// CreateAccount provisions the account backing the configured API key.
// Calling it for an account that already exists returns an API error.
func (c *Client) CreateAccount(ctx context.Context) error {
	req := &api.Request{Method: http.MethodPost, Path: "/accounts"}
	return c.api.Do(ctx, req, nil)
}

// GetUsage returns the account's current storage usage and allowance.
func (c *Client) GetUsage(ctx context.Context) (*AccountUsage, error) {
	var usage AccountUsage
	req := &api.Request{Method: http.MethodGet, Path: "/accounts/usage"}
	if err := c.api.Do(ctx, req, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// GetAccountID returns the stable identifier of the account.
func (c *Client) GetAccountID(ctx context.Context) (string, error) {
	var result struct {
		ID string `json:"id"`
	}
	req := &api.Request{Method: http.MethodGet, Path: "/accounts/id"}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

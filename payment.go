package jackalpin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// CreateCheckoutSession starts a checkout for the price identified by
// lookupKey and returns the session ID. A quantity above one is passed
// along; zero or one means a single unit.
func (c *Client) CreateCheckoutSession(ctx context.Context, lookupKey string, quantity int) (string, error) {
	var result struct {
		ID string `json:"id"`
	}
	req := &api.Request{
		Method: http.MethodPost,
		Path:   "/payment/checkout/" + url.PathEscape(lookupKey),
	}
	if quantity > 1 {
		q := url.Values{}
		q.Set("count", strconv.Itoa(quantity))
		req.Query = q
	}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// GetBillingPortalURL returns a link to the account's billing portal.
func (c *Client) GetBillingPortalURL(ctx context.Context) (string, error) {
	var result struct {
		URL string `json:"url"`
	}
	req := &api.Request{Method: http.MethodGet, Path: "/payment/manage"}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return "", err
	}
	return result.URL, nil
}

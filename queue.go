package jackalpin

import (
	"context"
	"net/http"

	"github.com/jackalLabs/jackalpin-go/internal/api"
)

// GetQueueSize reports the depth of the service's processing queue.
// This endpoint needs no API key; a configured key is still sent.
func (c *Client) GetQueueSize(ctx context.Context) (int, error) {
	var result struct {
		Size int `json:"size"`
	}
	req := &api.Request{Method: http.MethodGet, Path: "/queue", NoAuth: true}
	if err := c.api.Do(ctx, req, &result); err != nil {
		return 0, err
	}
	return result.Size, nil
}

package api

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// CommunityStats fetches the aggregate member/farmer/post/product counters.
func (c *Client) CommunityStats(ctx context.Context) (*models.CommunityStats, error) {
	var out models.CommunityStats
	if err := c.get(ctx, "/community/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := c.get(ctx, "/users/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMe edits the authenticated user's profile and returns the new state.
func (c *Client) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := c.put(ctx, "/users/me", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetUser fetches another user's public profile.
func (c *Client) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := c.get(ctx, "/users/"+pathParam(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

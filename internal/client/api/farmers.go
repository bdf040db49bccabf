package api

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// ListFarmers returns one page of the farmer directory.
func (c *Client) ListFarmers(ctx context.Context, page, size int) (*models.Page[models.Farmer], error) {
	var out models.Page[models.Farmer]
	if err := c.get(ctx, "/farmers", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFarmer fetches one farm's public profile.
func (c *Client) GetFarmer(ctx context.Context, id string) (*models.Farmer, error) {
	var out models.Farmer
	if err := c.get(ctx, "/farmers/"+pathParam(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterFarmer upgrades the caller's account to a farmer account.
func (c *Client) RegisterFarmer(ctx context.Context, req models.RegisterFarmerRequest) (*models.Farmer, error) {
	var out models.Farmer
	if err := c.post(ctx, "/farmers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

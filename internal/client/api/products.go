package api

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// ListProducts returns one catalog page, optionally narrowed by filter.
func (c *Client) ListProducts(ctx context.Context, page, size int, filter models.ProductFilter) (*models.Page[models.Product], error) {
	q := pageQuery(page, size)
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.FarmerID != "" {
		q.Set("farmerId", filter.FarmerID)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	var out models.Page[models.Product]
	if err := c.get(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct fetches a single listing.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, "/products/"+pathParam(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct publishes a listing (farmer accounts only).
func (c *Client) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := c.post(ctx, "/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct edits one of the caller's listings.
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := c.put(ctx, "/products/"+pathParam(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes one of the caller's listings.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/products/"+pathParam(id))
}

// ListReviews returns one page of a product's reviews, newest first.
func (c *Client) ListReviews(ctx context.Context, productID string, page, size int) (*models.Page[models.Review], error) {
	var out models.Page[models.Review]
	if err := c.get(ctx, "/products/"+pathParam(productID)+"/reviews", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReview posts a review on a product.
func (c *Client) CreateReview(ctx context.Context, productID string, req models.CreateReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.post(ctx, "/products/"+pathParam(productID)+"/reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

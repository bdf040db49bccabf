package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/client/session"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// MarketAPI is the slice of the API client the marketplace service needs.
type MarketAPI interface {
	ListProducts(ctx context.Context, page, size int, filter models.ProductFilter) (*models.Page[models.Product], error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListReviews(ctx context.Context, productID string, page, size int) (*models.Page[models.Review], error)
	CreateReview(ctx context.Context, productID string, req models.CreateReviewRequest) (*models.Review, error)
}

// MarketService is the cached catalog surface.
type MarketService interface {
	Products(ctx context.Context, page int, filter models.ProductFilter) (*models.Page[models.Product], error)
	Product(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Reviews(ctx context.Context, productID string, page int) (*models.Page[models.Review], error)
	AddReview(ctx context.Context, productID string, rating int, body string) (*models.Review, error)
}

type marketService struct {
	api      MarketAPI
	cache    *query.Cache
	sessions *session.Manager
}

// NewMarketService constructs a MarketService. The session manager is used
// for the farmer gate on listing mutations.
func NewMarketService(a MarketAPI, cache *query.Cache, sessions *session.Manager) MarketService {
	return &marketService{api: a, cache: cache, sessions: sessions}
}

func filterKeyParts(f models.ProductFilter) []string {
	var parts []string
	if f.Category != "" {
		parts = append(parts, "c="+f.Category)
	}
	if f.FarmerID != "" {
		parts = append(parts, "f="+f.FarmerID)
	}
	if f.Search != "" {
		parts = append(parts, "q="+f.Search)
	}
	return parts
}

func (s *marketService) Products(ctx context.Context, page int, filter models.ProductFilter) (*models.Page[models.Product], error) {
	key := query.ListKey("products", page, DefaultPageSize, filterKeyParts(filter)...)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Page[models.Product], error) {
		return s.api.ListProducts(ctx, page, DefaultPageSize, filter)
	})
}

func (s *marketService) Product(ctx context.Context, id string) (*models.Product, error) {
	key := query.Key("products", "detail", id)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Product, error) {
		return s.api.GetProduct(ctx, id)
	})
}

// requireFarmer rejects listing mutations client-side for non-farmer
// accounts, before any request is sent.
func (s *marketService) requireFarmer() error {
	p := s.sessions.Profile()
	if p == nil || !p.IsFarmer {
		return fmt.Errorf("%w: only farmer accounts can manage listings", common.ErrValidation)
	}
	return nil
}

func validateProduct(req models.CreateProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: product name is required", common.ErrValidation)
	}
	if req.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrValidation)
	}
	return nil
}

func (s *marketService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if err := s.requireFarmer(); err != nil {
		return nil, err
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.api.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(query.ListPrefix("products"))
	return product, nil
}

func (s *marketService) UpdateProduct(ctx context.Context, id string, req models.CreateProductRequest) (*models.Product, error) {
	if err := s.requireFarmer(); err != nil {
		return nil, err
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.api.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.Key("products", "detail", id))
	s.cache.InvalidatePrefix(query.ListPrefix("products"))
	return product, nil
}

func (s *marketService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.requireFarmer(); err != nil {
		return err
	}

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(query.Key("products", "detail", id))
	s.cache.InvalidatePrefix(query.ListPrefix("products"))
	return nil
}

func (s *marketService) Reviews(ctx context.Context, productID string, page int) (*models.Page[models.Review], error) {
	key := query.ListKey("reviews/"+productID, page, DefaultPageSize)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Page[models.Review], error) {
		return s.api.ListReviews(ctx, productID, page, DefaultPageSize)
	})
}

// AddReview validates the rating range and invalidates the product detail
// (aggregate rating) plus its review pages.
func (s *marketService) AddReview(ctx context.Context, productID string, rating int, body string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", common.ErrValidation)
	}

	review, err := s.api.CreateReview(ctx, productID, models.CreateReviewRequest{Rating: rating, Body: body})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(query.ListPrefix("reviews/" + productID))
	s.cache.Invalidate(query.Key("products", "detail", productID))
	return review, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// FarmerAPI is the slice of the API client the directory service needs.
type FarmerAPI interface {
	ListFarmers(ctx context.Context, page, size int) (*models.Page[models.Farmer], error)
	GetFarmer(ctx context.Context, id string) (*models.Farmer, error)
	RegisterFarmer(ctx context.Context, req models.RegisterFarmerRequest) (*models.Farmer, error)
	Me(ctx context.Context) (*models.UserProfile, error)
}

// ProfileSaver is the narrow session surface the farmer upgrade needs.
type ProfileSaver interface {
	SetProfile(p *models.UserProfile) error
}

// FarmerService is the farmer directory plus the become-a-farmer flow.
type FarmerService interface {
	Farmers(ctx context.Context, page int) (*models.Page[models.Farmer], error)
	Farmer(ctx context.Context, id string) (*models.Farmer, error)
	BecomeFarmer(ctx context.Context, form models.RegisterFarmerRequest) (*models.Farmer, error)
}

type farmerService struct {
	api      FarmerAPI
	cache    *query.Cache
	profiles ProfileSaver
}

// NewFarmerService constructs a FarmerService.
func NewFarmerService(a FarmerAPI, cache *query.Cache, profiles ProfileSaver) FarmerService {
	return &farmerService{api: a, cache: cache, profiles: profiles}
}

func (s *farmerService) Farmers(ctx context.Context, page int) (*models.Page[models.Farmer], error) {
	key := query.ListKey("farmers", page, DefaultPageSize)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Page[models.Farmer], error) {
		return s.api.ListFarmers(ctx, page, DefaultPageSize)
	})
}

func (s *farmerService) Farmer(ctx context.Context, id string) (*models.Farmer, error) {
	key := query.Key("farmers", "detail", id)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Farmer, error) {
		return s.api.GetFarmer(ctx, id)
	})
}

// BecomeFarmer validates the application, registers the farm, refreshes the
// stored profile (IsFarmer flips server-side), and invalidates the
// directory listing.
func (s *farmerService) BecomeFarmer(ctx context.Context, form models.RegisterFarmerRequest) (*models.Farmer, error) {
	if err := validateFarmerForm(form); err != nil {
		return nil, err
	}

	farmer, err := s.api.RegisterFarmer(ctx, form)
	if err != nil {
		return nil, err
	}

	if profile, err := s.api.Me(ctx); err == nil {
		_ = s.profiles.SetProfile(profile)
	}
	s.cache.InvalidatePrefix(query.ListPrefix("farmers"))
	return farmer, nil
}

func validateFarmerForm(form models.RegisterFarmerRequest) error {
	if strings.TrimSpace(form.FarmName) == "" {
		return fmt.Errorf("%w: farm name is required", common.ErrValidation)
	}
	if strings.TrimSpace(form.Location) == "" {
		return fmt.Errorf("%w: location is required", common.ErrValidation)
	}
	if strings.TrimSpace(form.Phone) == "" {
		return fmt.Errorf("%w: contact phone is required", common.ErrValidation)
	}
	return nil
}

package services

import (
	"context"
	"time"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
)

// statsTTL is longer than the default: the home-view counters move slowly.
const statsTTL = time.Minute

// CommunityAPI is the slice of the API client the community service needs.
type CommunityAPI interface {
	CommunityStats(ctx context.Context) (*models.CommunityStats, error)
}

// CommunityService serves the aggregate counters for the home view.
type CommunityService interface {
	Stats(ctx context.Context) (*models.CommunityStats, error)
}

type communityService struct {
	api   CommunityAPI
	cache *query.Cache
}

// NewCommunityService constructs a CommunityService.
func NewCommunityService(a CommunityAPI, cache *query.Cache) CommunityService {
	return &communityService{api: a, cache: cache}
}

func (s *communityService) Stats(ctx context.Context) (*models.CommunityStats, error) {
	return query.Fetch(ctx, s.cache, query.Key("community", "stats"), statsTTL, s.api.CommunityStats)
}

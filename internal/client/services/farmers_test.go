package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

type fakeFarmerAPI struct {
	registerCalls int
	listCalls     int
}

func (f *fakeFarmerAPI) ListFarmers(_ context.Context, page, size int) (*models.Page[models.Farmer], error) {
	f.listCalls++
	return &models.Page[models.Farmer]{Page: page, PageSize: size, TotalPages: 1}, nil
}

func (f *fakeFarmerAPI) GetFarmer(_ context.Context, id string) (*models.Farmer, error) {
	return &models.Farmer{ID: id, FarmName: "Boletova Farm"}, nil
}

func (f *fakeFarmerAPI) RegisterFarmer(_ context.Context, req models.RegisterFarmerRequest) (*models.Farmer, error) {
	f.registerCalls++
	return &models.Farmer{ID: "f-1", FarmName: req.FarmName}, nil
}

func (f *fakeFarmerAPI) Me(context.Context) (*models.UserProfile, error) {
	return &models.UserProfile{ID: "u-1", IsFarmer: true}, nil
}

type capturingSaver struct {
	saved *models.UserProfile
}

func (c *capturingSaver) SetProfile(p *models.UserProfile) error {
	c.saved = p
	return nil
}

func TestFarmerService_BecomeFarmer(t *testing.T) {
	fake := &fakeFarmerAPI{}
	cache := query.NewCache(time.Minute)
	t.Cleanup(cache.Stop)
	saver := &capturingSaver{}
	svc := NewFarmerService(fake, cache, saver)
	ctx := context.Background()

	// Incomplete applications never leave the client.
	for _, form := range []models.RegisterFarmerRequest{
		{Location: "Drenthe", Phone: "123"},
		{FarmName: "Boletova Farm", Phone: "123"},
		{FarmName: "Boletova Farm", Location: "Drenthe"},
	} {
		_, err := svc.BecomeFarmer(ctx, form)
		assert.ErrorIs(t, err, common.ErrValidation)
	}
	assert.Zero(t, fake.registerCalls)

	// The directory listing is cached, then invalidated by registration.
	_, err := svc.Farmers(ctx, 1)
	require.NoError(t, err)

	farmer, err := svc.BecomeFarmer(ctx, models.RegisterFarmerRequest{
		FarmName: "Boletova Farm", Location: "Drenthe", Phone: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "f-1", farmer.ID)

	require.NotNil(t, saver.saved, "profile refreshed after the upgrade")
	assert.True(t, saver.saved.IsFarmer)

	_, err = svc.Farmers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.listCalls)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fyyur/fyyur-backend/models"
)

type VenueUsecase struct {
	mock.Mock
}

func (u *VenueUsecase) ListAreas(ctx context.Context) ([]models.Area, error) {
	args := u.Called(ctx)
	return args.Get(0).([]models.Area), args.Error(1)
}

func (u *VenueUsecase) SearchVenues(ctx context.Context, searchTerm string) (models.SearchResult[models.VenueSummary], error) {
	args := u.Called(ctx, searchTerm)
	return args.Get(0).(models.SearchResult[models.VenueSummary]), args.Error(1)
}

func (u *VenueUsecase) GetVenue(ctx context.Context, venueId int64) (models.Venue, error) {
	args := u.Called(ctx, venueId)
	return args.Get(0).(models.Venue), args.Error(1)
}

func (u *VenueUsecase) GetVenueDetail(ctx context.Context, venueId int64) (models.VenueDetail, error) {
	args := u.Called(ctx, venueId)
	return args.Get(0).(models.VenueDetail), args.Error(1)
}

func (u *VenueUsecase) CreateVenue(ctx context.Context, input models.VenueInput) (models.Venue, error) {
	args := u.Called(ctx, input)
	return args.Get(0).(models.Venue), args.Error(1)
}

func (u *VenueUsecase) UpdateVenue(ctx context.Context, venueId int64, input models.VenueInput) (models.Venue, error) {
	args := u.Called(ctx, venueId, input)
	return args.Get(0).(models.Venue), args.Error(1)
}

func (u *VenueUsecase) DeleteVenue(ctx context.Context, venueId int64) error {
	args := u.Called(ctx, venueId)
	return args.Error(0)
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories"
)

type VenueRepository struct {
	mock.Mock
}

func (r *VenueRepository) ListVenues(ctx context.Context, exec repositories.Executor, now time.Time) ([]models.LocatedVenue, error) {
	args := r.Called(ctx, exec, now)
	return args.Get(0).([]models.LocatedVenue), args.Error(1)
}

func (r *VenueRepository) SearchVenues(ctx context.Context, exec repositories.Executor,
	searchTerm string, now time.Time,
) ([]models.VenueSummary, error) {
	args := r.Called(ctx, exec, searchTerm, now)
	return args.Get(0).([]models.VenueSummary), args.Error(1)
}

func (r *VenueRepository) GetVenueById(ctx context.Context, exec repositories.Executor, venueId int64) (models.Venue, error) {
	args := r.Called(ctx, exec, venueId)
	return args.Get(0).(models.Venue), args.Error(1)
}

func (r *VenueRepository) CreateVenue(ctx context.Context, exec repositories.Executor, input models.VenueInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *VenueRepository) UpdateVenue(ctx context.Context, exec repositories.Executor, venueId int64, input models.VenueInput) error {
	args := r.Called(ctx, exec, venueId, input)
	return args.Error(0)
}

func (r *VenueRepository) DeleteVenue(ctx context.Context, exec repositories.Executor, venueId int64) error {
	args := r.Called(ctx, exec, venueId)
	return args.Error(0)
}

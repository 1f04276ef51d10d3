package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories"
)

type ShowRepository struct {
	mock.Mock
}

func (r *ShowRepository) ListShows(ctx context.Context, exec repositories.Executor) ([]models.ShowSummary, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).([]models.ShowSummary), args.Error(1)
}

func (r *ShowRepository) ListShowsOfVenue(ctx context.Context, exec repositories.Executor, venueId int64) ([]models.ShowSummary, error) {
	args := r.Called(ctx, exec, venueId)
	return args.Get(0).([]models.ShowSummary), args.Error(1)
}

func (r *ShowRepository) ListShowsOfArtist(ctx context.Context, exec repositories.Executor, artistId int64) ([]models.ShowSummary, error) {
	args := r.Called(ctx, exec, artistId)
	return args.Get(0).([]models.ShowSummary), args.Error(1)
}

func (r *ShowRepository) CreateShow(ctx context.Context, exec repositories.Executor, input models.CreateShowInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *ShowRepository) DeleteShowsOfVenue(ctx context.Context, exec repositories.Executor, venueId int64) error {
	args := r.Called(ctx, exec, venueId)
	return args.Error(0)
}

func (r *ShowRepository) DeleteShowsOfArtist(ctx context.Context, exec repositories.Executor, artistId int64) error {
	args := r.Called(ctx, exec, artistId)
	return args.Error(0)
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories"
)

type ArtistRepository struct {
	mock.Mock
}

func (r *ArtistRepository) ListArtists(ctx context.Context, exec repositories.Executor, now time.Time) ([]models.ArtistSummary, error) {
	args := r.Called(ctx, exec, now)
	return args.Get(0).([]models.ArtistSummary), args.Error(1)
}

func (r *ArtistRepository) SearchArtists(ctx context.Context, exec repositories.Executor,
	searchTerm string, now time.Time,
) ([]models.ArtistSummary, error) {
	args := r.Called(ctx, exec, searchTerm, now)
	return args.Get(0).([]models.ArtistSummary), args.Error(1)
}

func (r *ArtistRepository) GetArtistById(ctx context.Context, exec repositories.Executor, artistId int64) (models.Artist, error) {
	args := r.Called(ctx, exec, artistId)
	return args.Get(0).(models.Artist), args.Error(1)
}

func (r *ArtistRepository) CreateArtist(ctx context.Context, exec repositories.Executor, input models.ArtistInput) (int64, error) {
	args := r.Called(ctx, exec, input)
	return args.Get(0).(int64), args.Error(1)
}

func (r *ArtistRepository) UpdateArtist(ctx context.Context, exec repositories.Executor, artistId int64, input models.ArtistInput) error {
	args := r.Called(ctx, exec, artistId, input)
	return args.Error(0)
}

func (r *ArtistRepository) DeleteArtist(ctx context.Context, exec repositories.Executor, artistId int64) error {
	args := r.Called(ctx, exec, artistId)
	return args.Error(0)
}

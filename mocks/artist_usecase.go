package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fyyur/fyyur-backend/models"
)

type ArtistUsecase struct {
	mock.Mock
}

func (u *ArtistUsecase) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	args := u.Called(ctx)
	return args.Get(0).([]models.ArtistSummary), args.Error(1)
}

func (u *ArtistUsecase) SearchArtists(ctx context.Context, searchTerm string) (models.SearchResult[models.ArtistSummary], error) {
	args := u.Called(ctx, searchTerm)
	return args.Get(0).(models.SearchResult[models.ArtistSummary]), args.Error(1)
}

func (u *ArtistUsecase) GetArtist(ctx context.Context, artistId int64) (models.Artist, error) {
	args := u.Called(ctx, artistId)
	return args.Get(0).(models.Artist), args.Error(1)
}

func (u *ArtistUsecase) GetArtistDetail(ctx context.Context, artistId int64) (models.ArtistDetail, error) {
	args := u.Called(ctx, artistId)
	return args.Get(0).(models.ArtistDetail), args.Error(1)
}

func (u *ArtistUsecase) CreateArtist(ctx context.Context, input models.ArtistInput) (models.Artist, error) {
	args := u.Called(ctx, input)
	return args.Get(0).(models.Artist), args.Error(1)
}

func (u *ArtistUsecase) UpdateArtist(ctx context.Context, artistId int64, input models.ArtistInput) (models.Artist, error) {
	args := u.Called(ctx, artistId, input)
	return args.Get(0).(models.Artist), args.Error(1)
}

func (u *ArtistUsecase) DeleteArtist(ctx context.Context, artistId int64) error {
	args := u.Called(ctx, artistId)
	return args.Error(0)
}

package api

import (
	"context"

	"github.com/fyyur/fyyur-backend/models"
)

type VenueUsecase interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	SearchVenues(ctx context.Context, searchTerm string) (models.SearchResult[models.VenueSummary], error)
	GetVenue(ctx context.Context, venueId int64) (models.Venue, error)
	GetVenueDetail(ctx context.Context, venueId int64) (models.VenueDetail, error)
	CreateVenue(ctx context.Context, input models.VenueInput) (models.Venue, error)
	UpdateVenue(ctx context.Context, venueId int64, input models.VenueInput) (models.Venue, error)
	DeleteVenue(ctx context.Context, venueId int64) error
}

type ArtistUsecase interface {
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, searchTerm string) (models.SearchResult[models.ArtistSummary], error)
	GetArtist(ctx context.Context, artistId int64) (models.Artist, error)
	GetArtistDetail(ctx context.Context, artistId int64) (models.ArtistDetail, error)
	CreateArtist(ctx context.Context, input models.ArtistInput) (models.Artist, error)
	UpdateArtist(ctx context.Context, artistId int64, input models.ArtistInput) (models.Artist, error)
	DeleteArtist(ctx context.Context, artistId int64) error
}

type ShowUsecase interface {
	ListShows(ctx context.Context) ([]models.ShowSummary, error)
	DefaultShowInput() models.CreateShowInput
	CreateShow(ctx context.Context, input models.CreateShowInput) (models.Show, error)
}

type LivenessUsecase interface {
	Liveness(ctx context.Context) error
}

package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/pubapi"
)

type VenueReader interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	SearchVenues(ctx context.Context, searchTerm string) (models.SearchResult[models.VenueSummary], error)
	GetVenueDetail(ctx context.Context, venueId int64) (models.VenueDetail, error)
}

type ArtistReader interface {
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, searchTerm string) (models.SearchResult[models.ArtistSummary], error)
	GetArtistDetail(ctx context.Context, artistId int64) (models.ArtistDetail, error)
}

type ShowReader interface {
	ListShows(ctx context.Context) ([]models.ShowSummary, error)
}

// AddReadRoutes exposes the listings as JSON.
func AddReadRoutes(r *gin.RouterGroup, venues VenueReader, artists ArtistReader, shows ShowReader) {
	r.GET("/-/version", handleVersion)

	r.GET("/venues", HandleListVenues(venues))
	r.GET("/venues/:venueId", HandleGetVenue(venues))
	r.GET("/artists", HandleListArtists(artists))
	r.GET("/artists/:artistId", HandleGetArtist(artists))
	r.GET("/shows", HandleListShows(shows))
}

func handleVersion(c *gin.Context) {
	pubapi.NewResponse(gin.H{"version": "v1"}).Serve(c)
}

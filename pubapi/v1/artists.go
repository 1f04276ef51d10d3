package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/pubapi"
	"github.com/fyyur/fyyur-backend/pubapi/v1/dto"
	"github.com/fyyur/fyyur-backend/utils"
)

func HandleListArtists(uc ArtistReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if term, ok := c.GetQuery("q"); ok {
			result, err := uc.SearchArtists(ctx, strings.TrimSpace(term))
			if err != nil {
				pubapi.NewErrorResponse().WithError(err).Serve(c)
				return
			}
			pubapi.NewResponse(dto.AdaptSearchResult(result, dto.AdaptArtistSummary)).Serve(c)
			return
		}

		artists, err := uc.ListArtists(ctx)
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		pubapi.NewResponse(utils.Map(artists, dto.AdaptArtistSummary)).Serve(c)
	}
}

func HandleGetArtist(uc ArtistReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId, err := pubapi.IdParam(c, "artistId")
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		artist, err := uc.GetArtistDetail(c.Request.Context(), artistId)
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		response := pubapi.NewResponse(dto.AdaptArtistDetail(artist))
		for _, show := range artist.UpcomingShows {
			response = response.WithLink(pubapi.LinkVenues, gin.H{"id": show.VenueId})
		}
		response.Serve(c)
	}
}

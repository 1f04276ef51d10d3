package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/pubapi"
	"github.com/fyyur/fyyur-backend/pubapi/v1/dto"
	"github.com/fyyur/fyyur-backend/utils"
)

// HandleListVenues lists venues grouped by area, or searches them by name when `q` is set.
func HandleListVenues(uc VenueReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if term, ok := c.GetQuery("q"); ok {
			result, err := uc.SearchVenues(ctx, strings.TrimSpace(term))
			if err != nil {
				pubapi.NewErrorResponse().WithError(err).Serve(c)
				return
			}
			pubapi.NewResponse(dto.AdaptSearchResult(result, dto.AdaptVenueSummary)).Serve(c)
			return
		}

		areas, err := uc.ListAreas(ctx)
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		pubapi.NewResponse(utils.Map(areas, dto.AdaptArea)).Serve(c)
	}
}

func HandleGetVenue(uc VenueReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, err := pubapi.IdParam(c, "venueId")
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		venue, err := uc.GetVenueDetail(c.Request.Context(), venueId)
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		response := pubapi.NewResponse(dto.AdaptVenueDetail(venue))
		for _, show := range venue.UpcomingShows {
			response = response.WithLink(pubapi.LinkArtists, gin.H{"id": show.ArtistId})
		}
		response.Serve(c)
	}
}

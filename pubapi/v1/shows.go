package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/pubapi"
	"github.com/fyyur/fyyur-backend/pubapi/v1/dto"
	"github.com/fyyur/fyyur-backend/utils"
)

func HandleListShows(uc ShowReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		shows, err := uc.ListShows(c.Request.Context())
		if err != nil {
			pubapi.NewErrorResponse().WithError(err).Serve(c)
			return
		}

		pubapi.NewResponse(utils.Map(shows, dto.AdaptShow)).Serve(c)
	}
}

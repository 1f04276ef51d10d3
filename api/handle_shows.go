package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/dto"
	"github.com/fyyur/fyyur-backend/models"
)

const pathCreateShow = "/shows/create"

func handleListShows(uc ShowUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		shows, err := uc.ListShows(c.Request.Context())
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageShows, "Shows", shows)
	}
}

func handleGetCreateShow(uc ShowUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderPage(c, http.StatusOK, pageNewShow, "List a new show", formData{
			Action: pathCreateShow,
			Form:   dto.NewShowForm(uc.DefaultShowInput()),
		})
	}
}

func handlePostCreateShow(uc ShowUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.ShowForm
		err := c.ShouldBind(&form)
		if err != nil {
			err = adaptBindingError(err)
		} else {
			var input models.CreateShowInput
			input, err = dto.AdaptCreateShowInput(form, uc.DefaultShowInput().StartTime)
			if err == nil {
				_, err = uc.CreateShow(c.Request.Context(), input)
			}
		}

		var fieldErrors models.FieldValidationError
		if errors.As(err, &fieldErrors) {
			renderPage(c, http.StatusBadRequest, pageNewShow, "List a new show", formData{
				Action: pathCreateShow,
				Form:   form,
				Errors: fieldErrors,
			})
			return
		}
		if err != nil {
			logError(c, err)
			addFlash(c, Flash{Category: FlashError, Message: "An error occurred. Show could not be listed."})
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		addFlash(c, Flash{Category: FlashSuccess, Message: "Show was successfully listed!"})
		c.Redirect(http.StatusSeeOther, "/")
	}
}

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/dto"
	"github.com/fyyur/fyyur-backend/models"
)

const pathCreateVenue = "/venues/create"

func venuePath(venueId int64) string {
	return fmt.Sprintf("/venues/%d", venueId)
}

func handleListVenues(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		areas, err := uc.ListAreas(c.Request.Context())
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageVenues, "Venues", areas)
	}
}

func handleSearchVenues(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.PostForm("search_term"))
		result, err := uc.SearchVenues(c.Request.Context(), term)
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageSearchVenues, "Search venues", result)
	}
}

func handleGetVenue(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, ok := pageIdParam(c, "venue_id")
		if !ok {
			return
		}

		venue, err := uc.GetVenueDetail(c.Request.Context(), venueId)
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageShowVenue, venue.Name, venue)
	}
}

func handleGetCreateVenue(c *gin.Context) {
	renderPage(c, http.StatusOK, pageNewVenue, "List a new venue", formData{
		Action: pathCreateVenue,
		Form:   dto.VenueForm{},
	})
}

func handlePostCreateVenue(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.VenueForm
		if err := c.ShouldBind(&form); err != nil {
			renderVenueForm(c, pageNewVenue, formData{Action: pathCreateVenue, Form: form}, adaptBindingError(err))
			return
		}

		venue, err := uc.CreateVenue(c.Request.Context(), dto.AdaptVenueInput(form))
		var fieldErrors models.FieldValidationError
		if errors.As(err, &fieldErrors) {
			renderVenueForm(c, pageNewVenue, formData{Action: pathCreateVenue, Form: form}, err)
			return
		}
		if err != nil {
			logError(c, err)
			addFlash(c, Flash{
				Category: FlashError,
				Message:  fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
			})
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		addFlash(c, Flash{
			Category: FlashSuccess,
			Message:  fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		})
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleGetEditVenue(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, ok := pageIdParam(c, "venue_id")
		if !ok {
			return
		}

		venue, err := uc.GetVenue(c.Request.Context(), venueId)
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageEditVenue, "Edit "+venue.Name, formData{
			Action: venuePath(venueId) + "/edit",
			Id:     venueId,
			Form:   dto.NewVenueForm(venue),
		})
	}
}

func handlePostEditVenue(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, ok := pageIdParam(c, "venue_id")
		if !ok {
			return
		}
		data := formData{Action: venuePath(venueId) + "/edit", Id: venueId}

		var form dto.VenueForm
		if err := c.ShouldBind(&form); err != nil {
			data.Form = form
			renderVenueForm(c, pageEditVenue, data, adaptBindingError(err))
			return
		}
		data.Form = form

		_, err := uc.UpdateVenue(c.Request.Context(), venueId, dto.AdaptVenueInput(form))
		var fieldErrors models.FieldValidationError
		if errors.As(err, &fieldErrors) {
			renderVenueForm(c, pageEditVenue, data, err)
			return
		}
		if presentErrorPage(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, venuePath(venueId))
	}
}

func handleDeleteVenue(uc VenueUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, err := idParam(c, "venue_id")
		if presentError(c, err) {
			return
		}

		err = uc.DeleteVenue(c.Request.Context(), venueId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": "Success"})
	}
}

// renderVenueForm renders the form back with the field errors of err, or the error page when
// err is not about the submitted fields.
func renderVenueForm(c *gin.Context, name string, data formData, err error) {
	var fieldErrors models.FieldValidationError
	if !errors.As(err, &fieldErrors) {
		presentErrorPage(c, err)
		return
	}
	data.Errors = fieldErrors
	title := "List a new venue"
	if name == pageEditVenue {
		title = "Edit venue"
	}
	renderPage(c, http.StatusBadRequest, name, title, data)
}

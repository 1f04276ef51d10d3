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

const pathCreateArtist = "/artists/create"

func artistPath(artistId int64) string {
	return fmt.Sprintf("/artists/%d", artistId)
}

func handleListArtists(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		artists, err := uc.ListArtists(c.Request.Context())
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageArtists, "Artists", artists)
	}
}

func handleSearchArtists(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.PostForm("search_term"))
		result, err := uc.SearchArtists(c.Request.Context(), term)
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageSearchArtists, "Search artists", result)
	}
}

func handleGetArtist(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId, ok := pageIdParam(c, "artist_id")
		if !ok {
			return
		}

		artist, err := uc.GetArtistDetail(c.Request.Context(), artistId)
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageShowArtist, artist.Name, artist)
	}
}

func handleGetCreateArtist(c *gin.Context) {
	renderPage(c, http.StatusOK, pageNewArtist, "List a new artist", formData{
		Action: pathCreateArtist,
		Form:   dto.ArtistForm{},
	})
}

func handlePostCreateArtist(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.ArtistForm
		if err := c.ShouldBind(&form); err != nil {
			renderArtistForm(c, pageNewArtist, formData{Action: pathCreateArtist, Form: form}, adaptBindingError(err))
			return
		}

		artist, err := uc.CreateArtist(c.Request.Context(), dto.AdaptArtistInput(form))
		var fieldErrors models.FieldValidationError
		if errors.As(err, &fieldErrors) {
			renderArtistForm(c, pageNewArtist, formData{Action: pathCreateArtist, Form: form}, err)
			return
		}
		if err != nil {
			logError(c, err)
			addFlash(c, Flash{
				Category: FlashError,
				Message:  fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name),
			})
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		addFlash(c, Flash{
			Category: FlashSuccess,
			Message:  fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		})
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleGetEditArtist(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId, ok := pageIdParam(c, "artist_id")
		if !ok {
			return
		}

		artist, err := uc.GetArtist(c.Request.Context(), artistId)
		if presentErrorPage(c, err) {
			return
		}
		renderPage(c, http.StatusOK, pageEditArtist, "Edit "+artist.Name, formData{
			Action: artistPath(artistId) + "/edit",
			Id:     artistId,
			Form:   dto.NewArtistForm(artist),
		})
	}
}

func handlePostEditArtist(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId, ok := pageIdParam(c, "artist_id")
		if !ok {
			return
		}
		data := formData{Action: artistPath(artistId) + "/edit", Id: artistId}

		var form dto.ArtistForm
		if err := c.ShouldBind(&form); err != nil {
			data.Form = form
			renderArtistForm(c, pageEditArtist, data, adaptBindingError(err))
			return
		}
		data.Form = form

		_, err := uc.UpdateArtist(c.Request.Context(), artistId, dto.AdaptArtistInput(form))
		var fieldErrors models.FieldValidationError
		if errors.As(err, &fieldErrors) {
			renderArtistForm(c, pageEditArtist, data, err)
			return
		}
		if presentErrorPage(c, err) {
			return
		}
		c.Redirect(http.StatusSeeOther, artistPath(artistId))
	}
}

func handleDeleteArtist(uc ArtistUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId, err := idParam(c, "artist_id")
		if presentError(c, err) {
			return
		}

		err = uc.DeleteArtist(c.Request.Context(), artistId)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": "Success"})
	}
}

func renderArtistForm(c *gin.Context, name string, data formData, err error) {
	var fieldErrors models.FieldValidationError
	if !errors.As(err, &fieldErrors) {
		presentErrorPage(c, err)
		return
	}
	data.Errors = fieldErrors
	title := "List a new artist"
	if name == pageEditArtist {
		title = "Edit artist"
	}
	renderPage(c, http.StatusBadRequest, name, title, data)
}

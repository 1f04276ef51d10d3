package dto

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/fyyur/fyyur-backend/models"
)

const showFormTimeLayout = "2006-01-02T15:04"

type ShowForm struct {
	ArtistId  string `form:"artist_id" binding:"required,number"`
	VenueId   string `form:"venue_id" binding:"required,number"`
	StartTime string `form:"start_time"`
}

// AdaptCreateShowInput reads the submitted ids and start time. An empty start time means now.
func AdaptCreateShowInput(f ShowForm, now time.Time) (models.CreateShowInput, error) {
	artistId, err := strconv.ParseInt(f.ArtistId, 10, 64)
	if err != nil {
		return models.CreateShowInput{}, models.FieldValidationError{"artist_id": "Not a valid integer value."}
	}
	venueId, err := strconv.ParseInt(f.VenueId, 10, 64)
	if err != nil {
		return models.CreateShowInput{}, models.FieldValidationError{"venue_id": "Not a valid integer value."}
	}
	startTime, err := models.ParseStartTime(f.StartTime, now)
	if err != nil {
		if errors.Is(err, models.ErrInvalidStart) {
			return models.CreateShowInput{}, models.FieldValidationError{"start_time": "Not a valid datetime value."}
		}
		return models.CreateShowInput{}, err
	}

	return models.CreateShowInput{
		VenueId:   venueId,
		ArtistId:  artistId,
		StartTime: startTime,
	}, nil
}

func NewShowForm(input models.CreateShowInput) ShowForm {
	f := ShowForm{StartTime: input.StartTime.Format(showFormTimeLayout)}
	if input.ArtistId > 0 {
		f.ArtistId = strconv.FormatInt(input.ArtistId, 10)
	}
	if input.VenueId > 0 {
		f.VenueId = strconv.FormatInt(input.VenueId, 10)
	}
	return f
}

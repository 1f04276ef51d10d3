package usecases

import (
	"strings"

	"github.com/fyyur/fyyur-backend/models"
)

const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Not a valid choice."
)

type listingFields struct {
	name, city, state *string
	genres            *[]string
}

// normalizeListing trims the common listing fields in place and reports the invalid ones.
func normalizeListing(f listingFields, fieldErrors models.FieldValidationError) {
	*f.name = strings.TrimSpace(*f.name)
	*f.city = strings.TrimSpace(*f.city)
	*f.state = strings.ToUpper(strings.TrimSpace(*f.state))

	if *f.name == "" {
		fieldErrors["name"] = msgRequired
	}
	if *f.city == "" {
		fieldErrors["city"] = msgRequired
	}
	if !models.IsKnownState(*f.state) {
		fieldErrors["state"] = msgInvalidChoice
	}
	genres, err := models.NormalizeGenres(*f.genres)
	if err != nil {
		fieldErrors["genres"] = msgInvalidChoice
	} else {
		*f.genres = genres
	}
}

func validateVenueInput(input models.VenueInput) (models.VenueInput, error) {
	fieldErrors := models.FieldValidationError{}
	normalizeListing(listingFields{
		name:   &input.Name,
		city:   &input.City,
		state:  &input.State,
		genres: &input.Genres,
	}, fieldErrors)

	input.Address = strings.TrimSpace(input.Address)
	if input.Address == "" {
		fieldErrors["address"] = msgRequired
	}
	input.SeekingDescription = strings.TrimSpace(input.SeekingDescription)

	if len(fieldErrors) > 0 {
		return input, fieldErrors
	}
	return input, nil
}

func validateArtistInput(input models.ArtistInput) (models.ArtistInput, error) {
	fieldErrors := models.FieldValidationError{}
	normalizeListing(listingFields{
		name:   &input.Name,
		city:   &input.City,
		state:  &input.State,
		genres: &input.Genres,
	}, fieldErrors)
	input.SeekingDescription = strings.TrimSpace(input.SeekingDescription)

	if len(fieldErrors) > 0 {
		return input, fieldErrors
	}
	return input, nil
}

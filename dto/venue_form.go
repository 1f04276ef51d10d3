package dto

import "github.com/fyyur/fyyur-backend/models"

type VenueForm struct {
	Name               string   `form:"name" binding:"required,max=120"`
	City               string   `form:"city" binding:"required,max=120"`
	State              string   `form:"state" binding:"required,us_state"`
	Address            string   `form:"address" binding:"required,max=120"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	Genres             []string `form:"genres" binding:"dive,genre"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

func AdaptVenueInput(f VenueForm) models.VenueInput {
	return models.VenueInput{
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingDescription: f.SeekingDescription,
	}
}

// NewVenueForm prefills the edition form with the current venue.
func NewVenueForm(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingDescription: v.SeekingDescription,
	}
}

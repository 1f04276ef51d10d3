package dto

import "github.com/fyyur/fyyur-backend/models"

type ArtistForm struct {
	Name               string   `form:"name" binding:"required,max=120"`
	City               string   `form:"city" binding:"required,max=120"`
	State              string   `form:"state" binding:"required,us_state"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	Genres             []string `form:"genres" binding:"dive,genre"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

func AdaptArtistInput(f ArtistForm) models.ArtistInput {
	return models.ArtistInput{
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingDescription: f.SeekingDescription,
	}
}

func NewArtistForm(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingDescription: a.SeekingDescription,
	}
}

package dbmodels

import (
	"time"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/utils"
)

type DBArtist struct {
	Id                 int64     `db:"id"`
	Name               string    `db:"name"`
	Genres             []string  `db:"genres"`
	City               string    `db:"city"`
	State              string    `db:"state"`
	Phone              string    `db:"phone"`
	ImageLink          string    `db:"image_link"`
	FacebookLink       string    `db:"facebook_link"`
	Website            string    `db:"website"`
	SeekingVenue       bool      `db:"seeking_venue"`
	SeekingDescription string    `db:"seeking_description"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

const TABLE_ARTISTS = "artists"

var SelectArtistColumn = utils.ColumnList[DBArtist]()

func AdaptArtist(db DBArtist) (models.Artist, error) {
	genres := db.Genres
	if genres == nil {
		genres = []string{}
	}
	return models.Artist{
		Id:                 db.Id,
		Name:               db.Name,
		Genres:             genres,
		City:               db.City,
		State:              db.State,
		Phone:              db.Phone,
		ImageLink:          db.ImageLink,
		FacebookLink:       db.FacebookLink,
		Website:            db.Website,
		SeekingVenue:       db.SeekingVenue,
		SeekingDescription: db.SeekingDescription,
		CreatedAt:          db.CreatedAt,
		UpdatedAt:          db.UpdatedAt,
	}, nil
}

type DBArtistSummary struct {
	Id               int64  `db:"id"`
	Name             string `db:"name"`
	NumUpcomingShows int    `db:"num_upcoming_shows"`
}

func AdaptArtistSummary(db DBArtistSummary) (models.ArtistSummary, error) {
	return models.ArtistSummary{
		Id:               db.Id,
		Name:             db.Name,
		NumUpcomingShows: db.NumUpcomingShows,
	}, nil
}

var ArtistInputColumns = []string{
	"name", "genres", "city", "state", "phone",
	"image_link", "facebook_link", "website", "seeking_venue", "seeking_description",
}

func ArtistInputValues(input models.ArtistInput) []any {
	genres := input.Genres
	if genres == nil {
		genres = []string{}
	}
	return []any{
		input.Name, genres, input.City, input.State, input.Phone,
		input.ImageLink, input.FacebookLink, input.Website, input.SeekingVenue(), input.SeekingDescription,
	}
}

package dbmodels

import (
	"time"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/utils"
)

type DBVenue struct {
	Id                 int64     `db:"id"`
	Name               string    `db:"name"`
	Genres             []string  `db:"genres"`
	City               string    `db:"city"`
	State              string    `db:"state"`
	Address            string    `db:"address"`
	Phone              string    `db:"phone"`
	ImageLink          string    `db:"image_link"`
	FacebookLink       string    `db:"facebook_link"`
	Website            string    `db:"website"`
	SeekingTalent      bool      `db:"seeking_talent"`
	SeekingDescription string    `db:"seeking_description"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

const TABLE_VENUES = "venues"

var SelectVenueColumn = utils.ColumnList[DBVenue]()

func AdaptVenue(db DBVenue) (models.Venue, error) {
	genres := db.Genres
	if genres == nil {
		genres = []string{}
	}
	return models.Venue{
		Id:                 db.Id,
		Name:               db.Name,
		Genres:             genres,
		City:               db.City,
		State:              db.State,
		Address:            db.Address,
		Phone:              db.Phone,
		ImageLink:          db.ImageLink,
		FacebookLink:       db.FacebookLink,
		Website:            db.Website,
		SeekingTalent:      db.SeekingTalent,
		SeekingDescription: db.SeekingDescription,
		CreatedAt:          db.CreatedAt,
		UpdatedAt:          db.UpdatedAt,
	}, nil
}

type DBLocatedVenue struct {
	Id               int64  `db:"id"`
	Name             string `db:"name"`
	City             string `db:"city"`
	State            string `db:"state"`
	NumUpcomingShows int    `db:"num_upcoming_shows"`
}

func AdaptLocatedVenue(db DBLocatedVenue) (models.LocatedVenue, error) {
	return models.LocatedVenue{
		VenueSummary: models.VenueSummary{
			Id:               db.Id,
			Name:             db.Name,
			NumUpcomingShows: db.NumUpcomingShows,
		},
		City:  db.City,
		State: db.State,
	}, nil
}

// VenueInputColumns lists the columns written on insert and update, in the order of VenueInputValues.
var VenueInputColumns = []string{
	"name", "genres", "city", "state", "address", "phone",
	"image_link", "facebook_link", "website", "seeking_talent", "seeking_description",
}

func VenueInputValues(input models.VenueInput) []any {
	genres := input.Genres
	if genres == nil {
		genres = []string{}
	}
	return []any{
		input.Name, genres, input.City, input.State, input.Address, input.Phone,
		input.ImageLink, input.FacebookLink, input.Website, input.SeekingTalent(), input.SeekingDescription,
	}
}

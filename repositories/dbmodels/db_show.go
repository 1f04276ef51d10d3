package dbmodels

import (
	"time"

	"github.com/fyyur/fyyur-backend/models"
)

const TABLE_SHOWS = "shows"

// Shows joined with their venue and artist

type DBShowSummary struct {
	Id              int64     `db:"id"`
	VenueId         int64     `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	VenueImageLink  string    `db:"venue_image_link"`
	ArtistId        int64     `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
	StartTime       time.Time `db:"start_time"`
}

var SelectShowSummaryColumn = []string{
	"s.id",
	"s.venue_id",
	"v.name AS venue_name",
	"v.image_link AS venue_image_link",
	"s.artist_id",
	"a.name AS artist_name",
	"a.image_link AS artist_image_link",
	"s.start_time",
}

func AdaptShowSummary(db DBShowSummary) (models.ShowSummary, error) {
	return models.ShowSummary{
		Id:              db.Id,
		VenueId:         db.VenueId,
		VenueName:       db.VenueName,
		VenueImageLink:  db.VenueImageLink,
		ArtistId:        db.ArtistId,
		ArtistName:      db.ArtistName,
		ArtistImageLink: db.ArtistImageLink,
		StartTime:       db.StartTime,
	}, nil
}

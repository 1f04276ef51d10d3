package models

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

type Show struct {
	Id        int64
	VenueId   int64
	ArtistId  int64
	StartTime time.Time
}

type CreateShowInput struct {
	VenueId   int64
	ArtistId  int64
	StartTime time.Time
}

// ShowSummary is a show joined with the display attributes of its venue and artist.
type ShowSummary struct {
	Id              int64
	VenueId         int64
	VenueName       string
	VenueImageLink  string
	ArtistId        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

func (s ShowSummary) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// PartitionShows splits shows into past and upcoming ones, keeping their relative order.
// A show starting exactly now is past.
func PartitionShows(shows []ShowSummary, now time.Time) (past, upcoming []ShowSummary) {
	past = make([]ShowSummary, 0, len(shows))
	upcoming = make([]ShowSummary, 0, len(shows))
	for _, show := range shows {
		if show.IsUpcoming(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return past, upcoming
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseStartTime reads a show start time as submitted by the show form. Empty means now.
func ParseStartTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now, nil
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidStart, "%q", value)
}

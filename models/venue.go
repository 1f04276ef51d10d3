package models

import "time"

type Venue struct {
	Id                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VenueInput carries the editable attributes of a venue, for creation as well as update.
type VenueInput struct {
	Name               string
	Genres             []string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingDescription string
}

func (input VenueInput) SeekingTalent() bool {
	return isSeeking(input.SeekingDescription)
}

type VenueSummary struct {
	Id               int64
	Name             string
	NumUpcomingShows int
}

// Area groups the venues located in the same city.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

type VenueDetail struct {
	Venue
	PastShows     []ShowSummary
	UpcomingShows []ShowSummary
}

func (d VenueDetail) PastShowsCount() int {
	return len(d.PastShows)
}

func (d VenueDetail) UpcomingShowsCount() int {
	return len(d.UpcomingShows)
}

// LocatedVenue is a venue summary along with the area it belongs to.
type LocatedVenue struct {
	VenueSummary
	City  string
	State string
}

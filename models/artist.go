package models

import (
	"strings"
	"time"
)

type Artist struct {
	Id                 int64
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ArtistInput struct {
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingDescription string
}

func (input ArtistInput) SeekingVenue() bool {
	return isSeeking(input.SeekingDescription)
}

type ArtistSummary struct {
	Id               int64
	Name             string
	NumUpcomingShows int
}

type ArtistDetail struct {
	Artist
	PastShows     []ShowSummary
	UpcomingShows []ShowSummary
}

func (d ArtistDetail) PastShowsCount() int {
	return len(d.PastShows)
}

func (d ArtistDetail) UpcomingShowsCount() int {
	return len(d.UpcomingShows)
}

// a venue or artist is looking for a match as soon as it describes what it looks for
func isSeeking(description string) bool {
	return strings.TrimSpace(description) != ""
}

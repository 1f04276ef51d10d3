package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/fyyur/fyyur-backend/models"
)

type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []ListingEntry `json:"venues"`
}

// ListingEntry is a venue or an artist as shown in listings and search results.
type ListingEntry struct {
	Id               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type SearchResult struct {
	SearchTerm string         `json:"search_term"`
	Count      int            `json:"count"`
	Data       []ListingEntry `json:"data"`
}

type Venue struct {
	Id                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Address            string      `json:"address"`
	Phone              null.String `json:"phone"`
	ImageLink          null.String `json:"image_link"`
	FacebookLink       null.String `json:"facebook_link"`
	Website            null.String `json:"website"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription null.String `json:"seeking_description"`
	PastShows          []Show      `json:"past_shows"`
	UpcomingShows      []Show      `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type Artist struct {
	Id                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              null.String `json:"phone"`
	ImageLink          null.String `json:"image_link"`
	FacebookLink       null.String `json:"facebook_link"`
	Website            null.String `json:"website"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription null.String `json:"seeking_description"`
	PastShows          []Show      `json:"past_shows"`
	UpcomingShows      []Show      `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type Show struct {
	Id              int64       `json:"id"`
	VenueId         int64       `json:"venue_id"`
	VenueName       string      `json:"venue_name"`
	VenueImageLink  null.String `json:"venue_image_link"`
	ArtistId        int64       `json:"artist_id"`
	ArtistName      string      `json:"artist_name"`
	ArtistImageLink null.String `json:"artist_image_link"`
	StartTime       time.Time   `json:"start_time"`
}

// optional text columns are stored empty, they are exposed as null
func optional(s string) null.String {
	return null.NewString(s, s != "")
}

func AdaptArea(a models.Area) Area {
	venues := make([]ListingEntry, len(a.Venues))
	for i, v := range a.Venues {
		venues[i] = AdaptVenueSummary(v)
	}
	return Area{City: a.City, State: a.State, Venues: venues}
}

func AdaptVenueSummary(v models.VenueSummary) ListingEntry {
	return ListingEntry{Id: v.Id, Name: v.Name, NumUpcomingShows: v.NumUpcomingShows}
}

func AdaptArtistSummary(a models.ArtistSummary) ListingEntry {
	return ListingEntry{Id: a.Id, Name: a.Name, NumUpcomingShows: a.NumUpcomingShows}
}

func AdaptSearchResult[T any](result models.SearchResult[T], adapter func(T) ListingEntry) SearchResult {
	data := make([]ListingEntry, len(result.Data))
	for i, item := range result.Data {
		data[i] = adapter(item)
	}
	return SearchResult{SearchTerm: result.SearchTerm, Count: result.Count, Data: data}
}

func AdaptShow(s models.ShowSummary) Show {
	return Show{
		Id:              s.Id,
		VenueId:         s.VenueId,
		VenueName:       s.VenueName,
		VenueImageLink:  optional(s.VenueImageLink),
		ArtistId:        s.ArtistId,
		ArtistName:      s.ArtistName,
		ArtistImageLink: optional(s.ArtistImageLink),
		StartTime:       s.StartTime,
	}
}

func adaptShows(shows []models.ShowSummary) []Show {
	out := make([]Show, len(shows))
	for i, s := range shows {
		out[i] = AdaptShow(s)
	}
	return out
}

func AdaptVenueDetail(d models.VenueDetail) Venue {
	return Venue{
		Id:                 d.Id,
		Name:               d.Name,
		Genres:             d.Genres,
		City:               d.City,
		State:              d.State,
		Address:            d.Address,
		Phone:              optional(d.Phone),
		ImageLink:          optional(d.ImageLink),
		FacebookLink:       optional(d.FacebookLink),
		Website:            optional(d.Website),
		SeekingTalent:      d.SeekingTalent,
		SeekingDescription: optional(d.SeekingDescription),
		PastShows:          adaptShows(d.PastShows),
		UpcomingShows:      adaptShows(d.UpcomingShows),
		PastShowsCount:     d.PastShowsCount(),
		UpcomingShowsCount: d.UpcomingShowsCount(),
	}
}

func AdaptArtistDetail(d models.ArtistDetail) Artist {
	return Artist{
		Id:                 d.Id,
		Name:               d.Name,
		Genres:             d.Genres,
		City:               d.City,
		State:              d.State,
		Phone:              optional(d.Phone),
		ImageLink:          optional(d.ImageLink),
		FacebookLink:       optional(d.FacebookLink),
		Website:            optional(d.Website),
		SeekingVenue:       d.SeekingVenue,
		SeekingDescription: optional(d.SeekingDescription),
		PastShows:          adaptShows(d.PastShows),
		UpcomingShows:      adaptShows(d.UpcomingShows),
		PastShowsCount:     d.PastShowsCount(),
		UpcomingShowsCount: d.UpcomingShowsCount(),
	}
}

package models

import "time"

type SeedConfiguration struct {
	File      string
	FakeCount int
}

type SeedVenue struct {
	Name               string   `yaml:"name"`
	Genres             []string `yaml:"genres"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Address            string   `yaml:"address"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type SeedArtist struct {
	Name               string   `yaml:"name"`
	Genres             []string `yaml:"genres"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	SeekingDescription string   `yaml:"seeking_description"`
}

// SeedShow references its venue and artist by name, as ids are only known after insertion.
type SeedShow struct {
	Venue     string    `yaml:"venue"`
	Artist    string    `yaml:"artist"`
	StartTime time.Time `yaml:"start_time"`
}

type SeedData struct {
	Venues  []SeedVenue  `yaml:"venues"`
	Artists []SeedArtist `yaml:"artists"`
	Shows   []SeedShow   `yaml:"shows"`
}

func (v SeedVenue) Input() VenueInput {
	return VenueInput{
		Name:               v.Name,
		Genres:             v.Genres,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingDescription: v.SeekingDescription,
	}
}

func (a SeedArtist) Input() ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingDescription: a.SeekingDescription,
	}
}

type SeedReport struct {
	Venues  int
	Artists int
	Shows   int
}

package models

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"
)

var GENRES = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

var genreSet = set.From(GENRES)

func IsKnownGenre(genre string) bool {
	return genreSet.Contains(genre)
}

// NormalizeGenres trims, drops empty and duplicate entries while keeping the submission order.
// Unknown genres are rejected.
func NormalizeGenres(genres []string) ([]string, error) {
	seen := set.New[string](len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || seen.Contains(g) {
			continue
		}
		if !IsKnownGenre(g) {
			return nil, errors.Wrapf(BadParameterError, "unknown genre %q", g)
		}
		seen.Insert(g)
		out = append(out, g)
	}
	return out, nil
}

package usecases

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/utils"
)

func nameSimilarityMetric() *metrics.JaroWinkler {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	return jw
}

// rankByName orders search hits by similarity of their name to the search term, most similar
// first, then alphabetically. The input slice is sorted in place.
func rankByName[T any](term string, items []T, name func(T) string) []T {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}

	metric := nameSimilarityMetric()
	scores := make(map[string]float64, len(items))
	score := func(n string) float64 {
		s, ok := scores[n]
		if !ok {
			s = strutil.Similarity(term, n, metric)
			scores[n] = s
		}
		return s
	}

	slices.SortStableFunc(items, func(a, b T) int {
		na, nb := name(a), name(b)
		sa, sb := score(na), score(nb)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return strings.Compare(strings.ToLower(na), strings.ToLower(nb))
		}
	})
	return items
}

// groupVenuesByArea builds the areas of the venue listing, ordered by state then city with an
// English collation so that accented city names sort next to their plain counterparts.
func groupVenuesByArea(venues []models.LocatedVenue) []models.Area {
	type areaKey struct {
		city, state string
	}

	keys, groups := utils.GroupBy(venues, func(v models.LocatedVenue) areaKey {
		return areaKey{city: v.City, state: v.State}
	})

	areas := make([]models.Area, 0, len(keys))
	for _, key := range keys {
		areas = append(areas, models.Area{
			City:  key.city,
			State: key.state,
			Venues: utils.Map(groups[key], func(v models.LocatedVenue) models.VenueSummary {
				return v.VenueSummary
			}),
		})
	}

	collator := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(areas, func(a, b models.Area) int {
		if c := collator.CompareString(a.State, b.State); c != 0 {
			return c
		}
		return collator.CompareString(a.City, b.City)
	})
	return areas
}

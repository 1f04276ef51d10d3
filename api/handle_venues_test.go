package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/fyyur-backend/models"
)

func validVenueForm() url.Values {
	return url.Values{
		"name":         {"The Musical Hop"},
		"city":         {"San Francisco"},
		"state":        {"CA"},
		"address":      {"1015 Folsom Street"},
		"phone":        {"123-123-1234"},
		"genres":       {"Jazz", "Reggae"},
		"website_link": {"https://www.themusicalhop.com"},
	}
}

func validVenueInput() models.VenueInput {
	return models.VenueInput{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
		Website: "https://www.themusicalhop.com",
	}
}

func TestListVenuesPage(t *testing.T) {
	s := newTestServer(t)
	s.venues.On("ListAreas", mock.Anything).Return([]models.Area{
		{City: "San Francisco", State: "CA", Venues: []models.VenueSummary{
			{Id: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
			{Id: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		}},
		{City: "New York", State: "NY", Venues: []models.VenueSummary{{Id: 2, Name: "The Dueling Pianos Bar"}}},
	}, nil)

	w := s.get("/venues")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "San Francisco, CA")
	assert.Contains(t, body, "New York, NY")
	assert.Contains(t, body, `href="/venues/3"`)
	assert.Contains(t, body, "Park Square Live Music &amp; Coffee")
	s.venues.AssertExpectations(t)
}

func TestSearchVenuesPage(t *testing.T) {
	s := newTestServer(t)
	s.venues.On("SearchVenues", mock.Anything, "hop").Return(
		models.NewSearchResult("hop", []models.VenueSummary{{Id: 1, Name: "The Musical Hop"}}), nil)

	w := s.postForm("/venues/search", url.Values{"search_term": {"  hop "}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Number of search results for "hop": 1`)
	assert.Contains(t, w.Body.String(), "The Musical Hop")
}

func TestShowVenuePage(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("GetVenueDetail", mock.Anything, int64(1)).Return(models.VenueDetail{
			Venue: models.Venue{
				Id:                 1,
				Name:               "The Musical Hop",
				Genres:             []string{"Jazz", "Reggae"},
				City:               "San Francisco",
				State:              "CA",
				Address:            "1015 Folsom Street",
				SeekingTalent:      true,
				SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
			},
			PastShows: []models.ShowSummary{{
				Id: 1, VenueId: 1, ArtistId: 4, ArtistName: "Guns N Petals",
				StartTime: testNow.AddDate(0, -1, 0),
			}},
			UpcomingShows: []models.ShowSummary{},
		}, nil)

		w := s.get("/venues/1")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Currently seeking talent")
		assert.Contains(t, body, "1 Past Show")
		assert.Contains(t, body, "0 Upcoming Shows")
		assert.Contains(t, body, "Guns N Petals")
		assert.Contains(t, body, "No Phone")
		assert.Contains(t, body, "Sunday April, 21, 2024 at 6:00PM")
	})

	t.Run("malformed id", func(t *testing.T) {
		s := newTestServer(t)

		w := s.get("/venues/abc")

		assert.Equal(t, http.StatusNotFound, w.Code)
		s.venues.AssertNotCalled(t, "GetVenueDetail", mock.Anything, mock.Anything)
	})

	t.Run("unknown venue", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("GetVenueDetail", mock.Anything, int64(42)).Return(models.VenueDetail{}, models.ErrVenueNotFound)

		w := s.get("/venues/42")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "404")
	})

	t.Run("store failure", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("GetVenueDetail", mock.Anything, int64(1)).Return(models.VenueDetail{}, assert.AnError)

		w := s.get("/venues/1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Something went wrong on our side")
	})
}

func TestCreateVenue(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("CreateVenue", mock.Anything, validVenueInput()).
			Return(models.Venue{Id: 1, Name: "The Musical Hop"}, nil)

		w := s.postForm("/venues/create", validVenueForm())

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		home := s.followRedirect(t, w)
		assert.Contains(t, home.Body.String(), "Venue The Musical Hop was successfully listed!")
		s.venues.AssertExpectations(t)
	})

	t.Run("lowercase state", func(t *testing.T) {
		s := newTestServer(t)
		input := validVenueInput()
		input.State = "ca"
		s.venues.On("CreateVenue", mock.Anything, input).
			Return(models.Venue{Id: 1, Name: "The Musical Hop", State: "CA"}, nil)
		form := validVenueForm()
		form.Set("state", "ca")

		w := s.postForm("/venues/create", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		s.venues.AssertExpectations(t)
	})

	t.Run("invalid form", func(t *testing.T) {
		s := newTestServer(t)
		form := validVenueForm()
		form.Del("name")
		form.Set("state", "ZZ")
		form.Set("phone", "555")

		w := s.postForm("/venues/create", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "This field is required.")
		assert.Contains(t, body, "Not a valid choice.")
		assert.Contains(t, body, "Invalid phone number")
		assert.Contains(t, body, `value="1015 Folsom Street"`)
		s.venues.AssertNotCalled(t, "CreateVenue", mock.Anything, mock.Anything)
	})

	t.Run("rejected by the usecase", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("CreateVenue", mock.Anything, validVenueInput()).
			Return(models.Venue{}, models.FieldValidationError{"address": "This field is required."})

		w := s.postForm("/venues/create", validVenueForm())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")
	})

	t.Run("store failure", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("CreateVenue", mock.Anything, validVenueInput()).Return(models.Venue{}, assert.AnError)

		w := s.postForm("/venues/create", validVenueForm())

		home := s.followRedirect(t, w)
		assert.Contains(t, home.Body.String(), "An error occurred. Venue The Musical Hop could not be listed.")
	})
}

func TestEditVenue(t *testing.T) {
	t.Run("form is prefilled", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("GetVenue", mock.Anything, int64(1)).Return(models.Venue{
			Id: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA",
			Address: "1015 Folsom Street", Genres: []string{"Jazz"},
		}, nil)

		w := s.get("/venues/1/edit")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `action="/venues/1/edit"`)
		assert.Contains(t, body, `value="1015 Folsom Street"`)
		assert.Contains(t, body, `<option value="Jazz" selected>`)
		assert.Contains(t, body, `<option value="CA" selected>`)
	})

	t.Run("nominal", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("UpdateVenue", mock.Anything, int64(1), validVenueInput()).
			Return(models.Venue{Id: 1, Name: "The Musical Hop"}, nil)

		w := s.postForm("/venues/1/edit", validVenueForm())

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/venues/1", w.Header().Get("Location"))
	})

	t.Run("unknown venue", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("UpdateVenue", mock.Anything, int64(42), validVenueInput()).
			Return(models.Venue{}, models.ErrVenueNotFound)

		w := s.postForm("/venues/42/edit", validVenueForm())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("UpdateVenue", mock.Anything, int64(1), validVenueInput()).
			Return(models.Venue{}, assert.AnError)

		w := s.postForm("/venues/1/edit", validVenueForm())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDeleteVenue(t *testing.T) {
	deleteVenue := func(s testServer, path string) *httptest.ResponseRecorder {
		return s.do(httptest.NewRequest(http.MethodDelete, path, nil))
	}

	t.Run("nominal", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("DeleteVenue", mock.Anything, int64(1)).Return(nil)

		w := deleteVenue(s, "/venues/1")

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Success", body["state"])
	})

	t.Run("unknown venue", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("DeleteVenue", mock.Anything, int64(42)).Return(models.ErrVenueNotFound)

		w := deleteVenue(s, "/venues/42")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		s := newTestServer(t)
		s.venues.On("DeleteVenue", mock.Anything, int64(1)).Return(assert.AnError)

		w := deleteVenue(s, "/venues/1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		s := newTestServer(t)

		w := deleteVenue(s, "/venues/zero")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

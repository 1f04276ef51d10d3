package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/fyyur-backend/mocks"
	"github.com/fyyur/fyyur-backend/models"
)

type testRouter struct {
	engine  *gin.Engine
	venues  *mocks.VenueUsecase
	artists *mocks.ArtistUsecase
	shows   *mocks.ShowUsecase
}

func newTestRouter() testRouter {
	gin.SetMode(gin.TestMode)
	r := testRouter{
		engine:  gin.New(),
		venues:  new(mocks.VenueUsecase),
		artists: new(mocks.ArtistUsecase),
		shows:   new(mocks.ShowUsecase),
	}
	AddReadRoutes(r.engine.Group("/api/v1"), r.venues, r.artists, r.shows)
	return r
}

func (r testRouter) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListVenues(t *testing.T) {
	r := newTestRouter()
	r.venues.On("ListAreas", mock.Anything).Return([]models.Area{
		{City: "San Francisco", State: "CA", Venues: []models.VenueSummary{{Id: 1, Name: "The Musical Hop", NumUpcomingShows: 2}}},
	}, nil)

	w := r.get("/api/v1/venues")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	areas := body["data"].([]any)
	require.Len(t, areas, 1)
	area := areas[0].(map[string]any)
	assert.Equal(t, "San Francisco", area["city"])
	venue := area["venues"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(2), venue["num_upcoming_shows"])
	r.venues.AssertExpectations(t)
}

func TestListVenues_search(t *testing.T) {
	r := newTestRouter()
	r.venues.On("SearchVenues", mock.Anything, "hop").Return(
		models.NewSearchResult("hop", []models.VenueSummary{{Id: 1, Name: "The Musical Hop"}}), nil)

	w := r.get("/api/v1/venues?q=%20hop%20")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
	assert.Equal(t, "hop", data["search_term"])
	r.venues.AssertExpectations(t)
}

func TestGetVenue(t *testing.T) {
	now := time.Date(2024, 5, 21, 18, 0, 0, 0, time.UTC)

	t.Run("nominal", func(t *testing.T) {
		r := newTestRouter()
		venue := models.Venue{Id: 1, Name: "The Musical Hop", Genres: []string{"Jazz"}, Phone: "123-123-1234"}
		upcoming := []models.ShowSummary{
			{Id: 1, VenueId: 1, ArtistId: 4, ArtistName: "Guns N Petals", StartTime: now},
		}
		r.venues.On("GetVenueDetail", mock.Anything, int64(1)).Return(models.VenueDetail{
			Venue:         venue,
			PastShows:     []models.ShowSummary{},
			UpcomingShows: upcoming,
		}, nil)

		w := r.get("/api/v1/venues/1")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, "123-123-1234", data["phone"])
		assert.Nil(t, data["website"])
		assert.Equal(t, float64(1), data["upcoming_shows_count"])
		assert.Equal(t, float64(0), data["past_shows_count"])
		assert.Contains(t, body, "links")
	})

	t.Run("invalid id", func(t *testing.T) {
		r := newTestRouter()

		w := r.get("/api/v1/venues/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		r.venues.AssertNotCalled(t, "GetVenueDetail", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		r := newTestRouter()
		r.venues.On("GetVenueDetail", mock.Anything, int64(42)).Return(models.VenueDetail{}, models.ErrVenueNotFound)

		w := r.get("/api/v1/venues/42")

		assert.Equal(t, http.StatusNotFound, w.Code)
		errBody := decode(t, w)["error"].(map[string]any)
		assert.NotContains(t, errBody["code"], "venue not found")
	})
}

func TestListArtists(t *testing.T) {
	r := newTestRouter()
	r.artists.On("ListArtists", mock.Anything).Return([]models.ArtistSummary{
		{Id: 4, Name: "Guns N Petals"}, {Id: 5, Name: "Matt Quevedo"},
	}, nil)

	w := r.get("/api/v1/artists")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 2)
}

func TestGetArtist_negative_id(t *testing.T) {
	r := newTestRouter()

	w := r.get("/api/v1/artists/-3")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListShows_error(t *testing.T) {
	r := newTestRouter()
	r.shows.On("ListShows", mock.Anything).Return([]models.ShowSummary(nil), assert.AnError)

	w := r.get("/api/v1/shows")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

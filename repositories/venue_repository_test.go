package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories/dbmodels"
)

var testNow = time.Date(2024, 5, 21, 18, 0, 0, 0, time.UTC)

func newMockExecutor(t *testing.T) (pgxmock.PgxPoolIface, Executor) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewExecutorGetter(mock).GetExecutor()
}

func TestListVenues(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectQuery(`(?s)SELECT v.id, v.name, v.city, v.state, \(.+s.start_time > \$1.+\) AS num_upcoming_shows FROM venues AS v ORDER BY v.state, v.city, v.name, v.id`).
		WithArgs(testNow).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", 2).
			AddRow(int64(3), "Park Square Live Music & Coffee", "San Francisco", "CA", 0),
		)

	venues, err := repo.ListVenues(context.Background(), exec, testNow)
	require.NoError(t, err)
	assert.Equal(t, []models.LocatedVenue{
		{VenueSummary: models.VenueSummary{Id: 1, Name: "The Musical Hop", NumUpcomingShows: 2}, City: "San Francisco", State: "CA"},
		{VenueSummary: models.VenueSummary{Id: 3, Name: "Park Square Live Music & Coffee"}, City: "San Francisco", State: "CA"},
	}, venues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchVenues_escapes_wildcards(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectQuery(`FROM venues AS v WHERE v.name ILIKE \$2 ORDER BY v.name, v.id`).
		WithArgs(testNow, `%100\%\_hop%`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}))

	_, err := repo.SearchVenues(context.Background(), exec, "100%_hop", testNow)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchVenues_escapes_underscore(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectQuery(`FROM venues AS v WHERE v.name ILIKE \$2`).
		WithArgs(testNow, `%a\_b%`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows"}).
			AddRow(int64(7), "A_B club", "New York", "NY", 1))

	venues, err := repo.SearchVenues(context.Background(), exec, "a_b", testNow)
	require.NoError(t, err)
	assert.Equal(t, []models.VenueSummary{{Id: 7, Name: "A_B club", NumUpcomingShows: 1}}, venues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVenueById(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, exec := newMockExecutor(t)
		repo := FyyurDbRepository{}

		mock.ExpectQuery(`SELECT id, name, genres, .+ FROM venues WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(dbmodels.SelectVenueColumn).
				AddRow(int64(1), "The Musical Hop", []string{"Jazz", "Reggae"}, "San Francisco", "CA",
					"1015 Folsom Street", "123-123-1234", "", "", "", true, "Looking for jazz", testNow, testNow))

		venue, err := repo.GetVenueById(context.Background(), exec, 1)
		require.NoError(t, err)
		assert.Equal(t, "The Musical Hop", venue.Name)
		assert.Equal(t, []string{"Jazz", "Reggae"}, venue.Genres)
		assert.True(t, venue.SeekingTalent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock, exec := newMockExecutor(t)
		repo := FyyurDbRepository{}

		mock.ExpectQuery(`FROM venues WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows(dbmodels.SelectVenueColumn))

		_, err := repo.GetVenueById(context.Background(), exec, 42)
		assert.ErrorIs(t, err, models.ErrVenueNotFound)
		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateVenue(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	input := models.VenueInput{
		Name:               "The Dueling Pianos Bar",
		Genres:             []string{"Classical", "R&B"},
		City:               "New York",
		State:              "NY",
		Address:            "335 Delancey Street",
		Phone:              "914-003-1132",
		SeekingDescription: "",
	}

	mock.ExpectQuery(`INSERT INTO venues \(name,genres,city,state,address,phone,image_link,facebook_link,website,seeking_talent,seeking_description\) VALUES .+ RETURNING id`).
		WithArgs("The Dueling Pianos Bar", []string{"Classical", "R&B"}, "New York", "NY",
			"335 Delancey Street", "914-003-1132", "", "", "", false, "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))

	id, err := repo.CreateVenue(context.Background(), exec, input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVenue_unknown(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	args := make([]any, 12)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectExec(`UPDATE venues SET .+ WHERE id = \$12`).
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateVenue(context.Background(), exec, 12, models.VenueInput{Name: "x"})
	assert.ErrorIs(t, err, models.ErrVenueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenue(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, exec := newMockExecutor(t)
		repo := FyyurDbRepository{}

		mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteVenue(context.Background(), exec, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, exec := newMockExecutor(t)
		repo := FyyurDbRepository{}

		mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnError(assert.AnError)

		err := repo.DeleteVenue(context.Background(), exec, 3)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

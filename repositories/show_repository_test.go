package repositories

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyyur/fyyur-backend/models"
)

var showSummaryColumns = []string{
	"id", "venue_id", "venue_name", "venue_image_link",
	"artist_id", "artist_name", "artist_image_link", "start_time",
}

func TestListShows(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	later := testNow.AddDate(0, 1, 0)
	mock.ExpectQuery(`SELECT s.id, .+ FROM shows AS s JOIN venues AS v ON v.id = s.venue_id JOIN artists AS a ON a.id = s.artist_id ORDER BY s.start_time, s.id`).
		WillReturnRows(pgxmock.NewRows(showSummaryColumns).
			AddRow(int64(1), int64(1), "The Musical Hop", "", int64(4), "Guns N Petals", "", testNow).
			AddRow(int64(2), int64(3), "Park Square Live Music & Coffee", "", int64(5), "Matt Quevedo", "", later))

	shows, err := repo.ListShows(context.Background(), exec)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, later, shows[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListShowsOfVenue(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectQuery(`FROM shows AS s .+ WHERE s.venue_id = \$1 ORDER BY s.start_time, s.id`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(showSummaryColumns))

	shows, err := repo.ListShowsOfVenue(context.Background(), exec, 3)
	require.NoError(t, err)
	assert.Empty(t, shows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListShowsOfArtist(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectQuery(`SELECT s.id, s.venue_id, v.name AS venue_name, .+ FROM shows AS s JOIN venues AS v ON v.id = s.venue_id JOIN artists AS a ON a.id = s.artist_id WHERE s.artist_id = \$1 ORDER BY s.start_time, s.id`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(showSummaryColumns).
			AddRow(int64(1), int64(1), "The Musical Hop", "https://img/venue.jpg",
				int64(4), "Guns N Petals", "https://img/artist.jpg", testNow))

	shows, err := repo.ListShowsOfArtist(context.Background(), exec, 4)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.Equal(t, testNow, shows[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShow(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectQuery(`INSERT INTO shows \(venue_id,artist_id,start_time\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs(int64(1), int64(4), testNow).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := repo.CreateShow(context.Background(), exec, models.CreateShowInput{VenueId: 1, ArtistId: 4, StartTime: testNow})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShow_errors(t *testing.T) {
	input := models.CreateShowInput{VenueId: 1, ArtistId: 4, StartTime: testNow}

	tests := []struct {
		name     string
		pgErr    error
		expected error
	}{
		{name: "duplicate", pgErr: &pgconn.PgError{Code: "23505"}, expected: models.ErrShowConflict},
		{name: "unknown venue", pgErr: &pgconn.PgError{Code: "23503"}, expected: models.NotFoundError},
		{name: "other", pgErr: assert.AnError, expected: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, exec := newMockExecutor(t)
			repo := FyyurDbRepository{}

			mock.ExpectQuery(`INSERT INTO shows \(venue_id,artist_id,start_time\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
				WithArgs(int64(1), int64(4), testNow).
				WillReturnError(tt.pgErr)

			_, err := repo.CreateShow(context.Background(), exec, input)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteShowsOfArtist(t *testing.T) {
	mock, exec := newMockExecutor(t)
	repo := FyyurDbRepository{}

	mock.ExpectExec(`DELETE FROM shows WHERE artist_id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.DeleteShowsOfArtist(context.Background(), exec, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories/dbmodels"
)

func selectShowSummaries() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectShowSummaryColumn...).
		From(fmt.Sprintf("%s AS s", dbmodels.TABLE_SHOWS)).
		Join(fmt.Sprintf("%s AS v ON v.id = s.venue_id", dbmodels.TABLE_VENUES)).
		Join(fmt.Sprintf("%s AS a ON a.id = s.artist_id", dbmodels.TABLE_ARTISTS)).
		OrderBy("s.start_time", "s.id")
}

func (repo *FyyurDbRepository) ListShows(ctx context.Context, exec Executor) ([]models.ShowSummary, error) {
	return SqlToListOfModels(ctx, exec, selectShowSummaries(), dbmodels.AdaptShowSummary)
}

func (repo *FyyurDbRepository) ListShowsOfVenue(ctx context.Context, exec Executor, venueId int64) ([]models.ShowSummary, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectShowSummaries().Where(squirrel.Eq{"s.venue_id": venueId}),
		dbmodels.AdaptShowSummary,
	)
}

func (repo *FyyurDbRepository) ListShowsOfArtist(ctx context.Context, exec Executor, artistId int64) ([]models.ShowSummary, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectShowSummaries().Where(squirrel.Eq{"s.artist_id": artistId}),
		dbmodels.AdaptShowSummary,
	)
}

func (repo *FyyurDbRepository) CreateShow(ctx context.Context, exec Executor, input models.CreateShowInput) (int64, error) {
	id, err := SqlToScalar[int64](
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_SHOWS).
			Columns("venue_id", "artist_id", "start_time").
			Values(input.VenueId, input.ArtistId, input.StartTime).
			Suffix("RETURNING id"),
	)
	switch {
	case err == nil:
		return id, nil
	case IsUniqueViolationError(err):
		return 0, models.ErrShowConflict
	case IsForeignKeyViolationError(err):
		return 0, errors.Wrap(models.NotFoundError, "unknown venue or artist")
	default:
		return 0, errors.Wrap(err, "error creating show")
	}
}

func (repo *FyyurDbRepository) DeleteShowsOfVenue(ctx context.Context, exec Executor, venueId int64) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_SHOWS).Where(squirrel.Eq{"venue_id": venueId}),
	)
	return err
}

func (repo *FyyurDbRepository) DeleteShowsOfArtist(ctx context.Context, exec Executor, artistId int64) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_SHOWS).Where(squirrel.Eq{"artist_id": artistId}),
	)
	return err
}

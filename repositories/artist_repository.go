package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories/dbmodels"
)

func selectArtistSummaries(now time.Time) squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select("a.id", "a.name").
		Column(`(
	SELECT count(*)
	FROM shows AS s
	WHERE s.artist_id = a.id AND s.start_time > ?
	) AS num_upcoming_shows`, now).
		From(fmt.Sprintf("%s AS a", dbmodels.TABLE_ARTISTS))
}

func (repo *FyyurDbRepository) ListArtists(ctx context.Context, exec Executor, now time.Time) ([]models.ArtistSummary, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectArtistSummaries(now).OrderBy("a.name", "a.id"),
		dbmodels.AdaptArtistSummary,
	)
}

func (repo *FyyurDbRepository) SearchArtists(ctx context.Context, exec Executor,
	searchTerm string, now time.Time,
) ([]models.ArtistSummary, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectArtistSummaries(now).
			Where(nameContains("a.name", searchTerm)).
			OrderBy("a.name", "a.id"),
		dbmodels.AdaptArtistSummary,
	)
}

func (repo *FyyurDbRepository) GetArtistById(ctx context.Context, exec Executor, artistId int64) (models.Artist, error) {
	artist, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectArtistColumn...).
			From(dbmodels.TABLE_ARTISTS).
			Where(squirrel.Eq{"id": artistId}),
		dbmodels.AdaptArtist,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.Artist{}, errors.Wrapf(models.ErrArtistNotFound, "artist %d", artistId)
	}
	return artist, err
}

func (repo *FyyurDbRepository) CreateArtist(ctx context.Context, exec Executor, input models.ArtistInput) (int64, error) {
	id, err := SqlToScalar[int64](
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_ARTISTS).
			Columns(dbmodels.ArtistInputColumns...).
			Values(dbmodels.ArtistInputValues(input)...).
			Suffix("RETURNING id"),
	)
	return id, errors.Wrap(err, "error creating artist")
}

func (repo *FyyurDbRepository) UpdateArtist(ctx context.Context, exec Executor, artistId int64, input models.ArtistInput) error {
	setMap := make(map[string]any, len(dbmodels.ArtistInputColumns)+1)
	for i, value := range dbmodels.ArtistInputValues(input) {
		setMap[dbmodels.ArtistInputColumns[i]] = value
	}
	setMap["updated_at"] = squirrel.Expr("now()")

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_ARTISTS).
			SetMap(setMap).
			Where(squirrel.Eq{"id": artistId}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrArtistNotFound, "artist %d", artistId)
	}
	return nil
}

func (repo *FyyurDbRepository) DeleteArtist(ctx context.Context, exec Executor, artistId int64) error {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_ARTISTS).
			Where(squirrel.Eq{"id": artistId}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrArtistNotFound, "artist %d", artistId)
	}
	return nil
}

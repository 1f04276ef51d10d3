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

func selectLocatedVenues(now time.Time) squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select("v.id", "v.name", "v.city", "v.state").
		Column(`(
	SELECT count(*)
	FROM shows AS s
	WHERE s.venue_id = v.id AND s.start_time > ?
	) AS num_upcoming_shows`, now).
		From(fmt.Sprintf("%s AS v", dbmodels.TABLE_VENUES))
}

// ListVenues returns every venue with its count of shows starting after now.
func (repo *FyyurDbRepository) ListVenues(ctx context.Context, exec Executor, now time.Time) ([]models.LocatedVenue, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		selectLocatedVenues(now).OrderBy("v.state", "v.city", "v.name", "v.id"),
		dbmodels.AdaptLocatedVenue,
	)
}

func (repo *FyyurDbRepository) SearchVenues(ctx context.Context, exec Executor,
	searchTerm string, now time.Time,
) ([]models.VenueSummary, error) {
	located, err := SqlToListOfModels(
		ctx,
		exec,
		selectLocatedVenues(now).
			Where(nameContains("v.name", searchTerm)).
			OrderBy("v.name", "v.id"),
		dbmodels.AdaptLocatedVenue,
	)
	if err != nil {
		return nil, err
	}

	venues := make([]models.VenueSummary, len(located))
	for i, venue := range located {
		venues[i] = venue.VenueSummary
	}
	return venues, nil
}

func (repo *FyyurDbRepository) GetVenueById(ctx context.Context, exec Executor, venueId int64) (models.Venue, error) {
	venue, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectVenueColumn...).
			From(dbmodels.TABLE_VENUES).
			Where(squirrel.Eq{"id": venueId}),
		dbmodels.AdaptVenue,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.Venue{}, errors.Wrapf(models.ErrVenueNotFound, "venue %d", venueId)
	}
	return venue, err
}

func (repo *FyyurDbRepository) CreateVenue(ctx context.Context, exec Executor, input models.VenueInput) (int64, error) {
	id, err := SqlToScalar[int64](
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_VENUES).
			Columns(dbmodels.VenueInputColumns...).
			Values(dbmodels.VenueInputValues(input)...).
			Suffix("RETURNING id"),
	)
	return id, errors.Wrap(err, "error creating venue")
}

func (repo *FyyurDbRepository) UpdateVenue(ctx context.Context, exec Executor, venueId int64, input models.VenueInput) error {
	setMap := make(map[string]any, len(dbmodels.VenueInputColumns)+1)
	for i, value := range dbmodels.VenueInputValues(input) {
		setMap[dbmodels.VenueInputColumns[i]] = value
	}
	setMap["updated_at"] = squirrel.Expr("now()")

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_VENUES).
			SetMap(setMap).
			Where(squirrel.Eq{"id": venueId}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrVenueNotFound, "venue %d", venueId)
	}
	return nil
}

func (repo *FyyurDbRepository) DeleteVenue(ctx context.Context, exec Executor, venueId int64) error {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_VENUES).
			Where(squirrel.Eq{"id": venueId}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrVenueNotFound, "venue %d", venueId)
	}
	return nil
}

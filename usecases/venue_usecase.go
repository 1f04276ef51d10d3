package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/repositories/clock"
	"github.com/fyyur/fyyur-backend/usecases/executor_factory"
	"github.com/fyyur/fyyur-backend/utils"
)

type VenueRepository interface {
	ListVenues(ctx context.Context, exec repositories.Executor, now time.Time) ([]models.LocatedVenue, error)
	SearchVenues(ctx context.Context, exec repositories.Executor, searchTerm string, now time.Time) ([]models.VenueSummary, error)
	GetVenueById(ctx context.Context, exec repositories.Executor, venueId int64) (models.Venue, error)
	CreateVenue(ctx context.Context, exec repositories.Executor, input models.VenueInput) (int64, error)
	UpdateVenue(ctx context.Context, exec repositories.Executor, venueId int64, input models.VenueInput) error
	DeleteVenue(ctx context.Context, exec repositories.Executor, venueId int64) error
}

type ShowRepository interface {
	ListShows(ctx context.Context, exec repositories.Executor) ([]models.ShowSummary, error)
	ListShowsOfVenue(ctx context.Context, exec repositories.Executor, venueId int64) ([]models.ShowSummary, error)
	ListShowsOfArtist(ctx context.Context, exec repositories.Executor, artistId int64) ([]models.ShowSummary, error)
	CreateShow(ctx context.Context, exec repositories.Executor, input models.CreateShowInput) (int64, error)
	DeleteShowsOfVenue(ctx context.Context, exec repositories.Executor, venueId int64) error
	DeleteShowsOfArtist(ctx context.Context, exec repositories.Executor, artistId int64) error
}

type VenueUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	venueRepository    VenueRepository
	showRepository     ShowRepository
	clock              clock.Clock
	tracer             trace.Tracer
}

// ListAreas returns every venue grouped by city, with its number of upcoming shows.
func (usecase *VenueUsecase) ListAreas(ctx context.Context) ([]models.Area, error) {
	venues, err := usecase.venueRepository.ListVenues(ctx, usecase.executorFactory.NewExecutor(), usecase.clock.Now())
	if err != nil {
		return nil, err
	}
	return groupVenuesByArea(venues), nil
}

func (usecase *VenueUsecase) SearchVenues(ctx context.Context, searchTerm string) (models.SearchResult[models.VenueSummary], error) {
	venues, err := usecase.venueRepository.SearchVenues(ctx,
		usecase.executorFactory.NewExecutor(), searchTerm, usecase.clock.Now())
	if err != nil {
		return models.SearchResult[models.VenueSummary]{}, err
	}

	venues = rankByName(searchTerm, venues, func(v models.VenueSummary) string { return v.Name })
	return models.NewSearchResult(searchTerm, venues), nil
}

func (usecase *VenueUsecase) GetVenue(ctx context.Context, venueId int64) (models.Venue, error) {
	return usecase.venueRepository.GetVenueById(ctx, usecase.executorFactory.NewExecutor(), venueId)
}

// GetVenueDetail returns the venue along with its shows, split around the current time.
func (usecase *VenueUsecase) GetVenueDetail(ctx context.Context, venueId int64) (models.VenueDetail, error) {
	exec := usecase.executorFactory.NewExecutor()
	venue, err := usecase.venueRepository.GetVenueById(ctx, exec, venueId)
	if err != nil {
		return models.VenueDetail{}, err
	}

	shows, err := usecase.showRepository.ListShowsOfVenue(ctx, exec, venueId)
	if err != nil {
		return models.VenueDetail{}, err
	}

	past, upcoming := models.PartitionShows(shows, usecase.clock.Now())
	return models.VenueDetail{
		Venue:         venue,
		PastShows:     past,
		UpcomingShows: upcoming,
	}, nil
}

func (usecase *VenueUsecase) CreateVenue(ctx context.Context, input models.VenueInput) (models.Venue, error) {
	ctx, span := startSpan(ctx, usecase.tracer, "VenueUsecase.CreateVenue")
	defer span.End()

	input, err := validateVenueInput(input)
	if err != nil {
		return models.Venue{}, err
	}

	venue, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Venue, error) {
			venueId, err := usecase.venueRepository.CreateVenue(ctx, tx, input)
			if err != nil {
				return models.Venue{}, err
			}
			return usecase.venueRepository.GetVenueById(ctx, tx, venueId)
		})
	if err != nil {
		return models.Venue{}, err
	}

	utils.MetricListingsCreated.WithLabelValues("venue").Inc()
	utils.LoggerFromContext(ctx).InfoContext(ctx, "venue listed", "venue_id", venue.Id)
	return venue, nil
}

func (usecase *VenueUsecase) UpdateVenue(ctx context.Context, venueId int64, input models.VenueInput) (models.Venue, error) {
	ctx, span := startSpan(ctx, usecase.tracer, "VenueUsecase.UpdateVenue", attribute.Int64("venue_id", venueId))
	defer span.End()

	input, err := validateVenueInput(input)
	if err != nil {
		return models.Venue{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Venue, error) {
			if err := usecase.venueRepository.UpdateVenue(ctx, tx, venueId, input); err != nil {
				return models.Venue{}, err
			}
			return usecase.venueRepository.GetVenueById(ctx, tx, venueId)
		})
}

// DeleteVenue removes the venue and every show booked there.
func (usecase *VenueUsecase) DeleteVenue(ctx context.Context, venueId int64) error {
	ctx, span := startSpan(ctx, usecase.tracer, "VenueUsecase.DeleteVenue", attribute.Int64("venue_id", venueId))
	defer span.End()

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		if err := usecase.showRepository.DeleteShowsOfVenue(ctx, tx, venueId); err != nil {
			return err
		}
		return usecase.venueRepository.DeleteVenue(ctx, tx, venueId)
	})
}

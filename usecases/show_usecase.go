package usecases

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/repositories/clock"
	"github.com/fyyur/fyyur-backend/usecases/executor_factory"
	"github.com/fyyur/fyyur-backend/utils"
)

type ShowUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	showRepository     ShowRepository
	venueRepository    VenueRepository
	artistRepository   ArtistRepository
	clock              clock.Clock
	tracer             trace.Tracer
}

func (usecase *ShowUsecase) ListShows(ctx context.Context) ([]models.ShowSummary, error) {
	return usecase.showRepository.ListShows(ctx, usecase.executorFactory.NewExecutor())
}

// DefaultShowInput is what the show form is pre-filled with.
func (usecase *ShowUsecase) DefaultShowInput() models.CreateShowInput {
	return models.CreateShowInput{StartTime: usecase.clock.Now()}
}

func (usecase *ShowUsecase) CreateShow(ctx context.Context, input models.CreateShowInput) (models.Show, error) {
	ctx, span := startSpan(ctx, usecase.tracer, "ShowUsecase.CreateShow",
		attribute.Int64("venue_id", input.VenueId),
		attribute.Int64("artist_id", input.ArtistId))
	defer span.End()

	if input.StartTime.IsZero() {
		input.StartTime = usecase.clock.Now()
	}

	show, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Show, error) {
			if _, err := usecase.venueRepository.GetVenueById(ctx, tx, input.VenueId); err != nil {
				return models.Show{}, err
			}
			if _, err := usecase.artistRepository.GetArtistById(ctx, tx, input.ArtistId); err != nil {
				return models.Show{}, err
			}

			showId, err := usecase.showRepository.CreateShow(ctx, tx, input)
			if err != nil {
				return models.Show{}, err
			}
			return models.Show{
				Id:        showId,
				VenueId:   input.VenueId,
				ArtistId:  input.ArtistId,
				StartTime: input.StartTime,
			}, nil
		})
	if err != nil {
		return models.Show{}, err
	}

	utils.MetricListingsCreated.WithLabelValues("show").Inc()
	utils.LoggerFromContext(ctx).InfoContext(ctx, "show listed",
		"show_id", show.Id, "venue_id", show.VenueId, "artist_id", show.ArtistId)
	return show, nil
}

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

type ArtistRepository interface {
	ListArtists(ctx context.Context, exec repositories.Executor, now time.Time) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, exec repositories.Executor, searchTerm string, now time.Time) ([]models.ArtistSummary, error)
	GetArtistById(ctx context.Context, exec repositories.Executor, artistId int64) (models.Artist, error)
	CreateArtist(ctx context.Context, exec repositories.Executor, input models.ArtistInput) (int64, error)
	UpdateArtist(ctx context.Context, exec repositories.Executor, artistId int64, input models.ArtistInput) error
	DeleteArtist(ctx context.Context, exec repositories.Executor, artistId int64) error
}

type ArtistUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	artistRepository   ArtistRepository
	showRepository     ShowRepository
	clock              clock.Clock
	tracer             trace.Tracer
}

func (usecase *ArtistUsecase) ListArtists(ctx context.Context) ([]models.ArtistSummary, error) {
	return usecase.artistRepository.ListArtists(ctx, usecase.executorFactory.NewExecutor(), usecase.clock.Now())
}

func (usecase *ArtistUsecase) SearchArtists(ctx context.Context, searchTerm string) (models.SearchResult[models.ArtistSummary], error) {
	artists, err := usecase.artistRepository.SearchArtists(ctx,
		usecase.executorFactory.NewExecutor(), searchTerm, usecase.clock.Now())
	if err != nil {
		return models.SearchResult[models.ArtistSummary]{}, err
	}

	artists = rankByName(searchTerm, artists, func(a models.ArtistSummary) string { return a.Name })
	return models.NewSearchResult(searchTerm, artists), nil
}

func (usecase *ArtistUsecase) GetArtist(ctx context.Context, artistId int64) (models.Artist, error) {
	return usecase.artistRepository.GetArtistById(ctx, usecase.executorFactory.NewExecutor(), artistId)
}

func (usecase *ArtistUsecase) GetArtistDetail(ctx context.Context, artistId int64) (models.ArtistDetail, error) {
	exec := usecase.executorFactory.NewExecutor()
	artist, err := usecase.artistRepository.GetArtistById(ctx, exec, artistId)
	if err != nil {
		return models.ArtistDetail{}, err
	}

	shows, err := usecase.showRepository.ListShowsOfArtist(ctx, exec, artistId)
	if err != nil {
		return models.ArtistDetail{}, err
	}

	past, upcoming := models.PartitionShows(shows, usecase.clock.Now())
	return models.ArtistDetail{
		Artist:        artist,
		PastShows:     past,
		UpcomingShows: upcoming,
	}, nil
}

func (usecase *ArtistUsecase) CreateArtist(ctx context.Context, input models.ArtistInput) (models.Artist, error) {
	ctx, span := startSpan(ctx, usecase.tracer, "ArtistUsecase.CreateArtist")
	defer span.End()

	input, err := validateArtistInput(input)
	if err != nil {
		return models.Artist{}, err
	}

	artist, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Artist, error) {
			artistId, err := usecase.artistRepository.CreateArtist(ctx, tx, input)
			if err != nil {
				return models.Artist{}, err
			}
			return usecase.artistRepository.GetArtistById(ctx, tx, artistId)
		})
	if err != nil {
		return models.Artist{}, err
	}

	utils.MetricListingsCreated.WithLabelValues("artist").Inc()
	utils.LoggerFromContext(ctx).InfoContext(ctx, "artist listed", "artist_id", artist.Id)
	return artist, nil
}

func (usecase *ArtistUsecase) UpdateArtist(ctx context.Context, artistId int64, input models.ArtistInput) (models.Artist, error) {
	ctx, span := startSpan(ctx, usecase.tracer, "ArtistUsecase.UpdateArtist", attribute.Int64("artist_id", artistId))
	defer span.End()

	input, err := validateArtistInput(input)
	if err != nil {
		return models.Artist{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Artist, error) {
			if err := usecase.artistRepository.UpdateArtist(ctx, tx, artistId, input); err != nil {
				return models.Artist{}, err
			}
			return usecase.artistRepository.GetArtistById(ctx, tx, artistId)
		})
}

func (usecase *ArtistUsecase) DeleteArtist(ctx context.Context, artistId int64) error {
	ctx, span := startSpan(ctx, usecase.tracer, "ArtistUsecase.DeleteArtist", attribute.Int64("artist_id", artistId))
	defer span.End()

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		if err := usecase.showRepository.DeleteShowsOfArtist(ctx, tx, artistId); err != nil {
			return err
		}
		return usecase.artistRepository.DeleteArtist(ctx, tx, artistId)
	})
}

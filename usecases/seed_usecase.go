package usecases

import (
	"bytes"
	"context"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/usecases/executor_factory"
	"github.com/fyyur/fyyur-backend/utils"
)

type SeedUsecase struct {
	transactionFactory executor_factory.TransactionFactory
	venueRepository    VenueRepository
	artistRepository   ArtistRepository
	showRepository     ShowRepository
	tracer             trace.Tracer
}

// ParseSeedData reads a YAML seed document. Unknown keys are rejected.
func ParseSeedData(data []byte) (models.SeedData, error) {
	var seed models.SeedData
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return models.SeedData{}, errors.Wrap(models.BadParameterError, err.Error())
	}
	return seed, nil
}

// Seed inserts the seed data plus fakeCount generated artists, all in one transaction.
func (usecase *SeedUsecase) Seed(ctx context.Context, seed models.SeedData, fakeCount int) (models.SeedReport, error) {
	ctx, span := startSpan(ctx, usecase.tracer, "SeedUsecase.Seed", attribute.Int("fake_count", fakeCount))
	defer span.End()

	logger := utils.LoggerFromContext(ctx)
	var report models.SeedReport

	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		report = models.SeedReport{}
		venueIds := make(map[string]int64, len(seed.Venues))
		for _, venue := range seed.Venues {
			input, err := validateVenueInput(venue.Input())
			if err != nil {
				return errors.Wrapf(err, "seed venue %q", venue.Name)
			}
			id, err := usecase.venueRepository.CreateVenue(ctx, tx, input)
			if err != nil {
				return err
			}
			venueIds[input.Name] = id
			report.Venues++
		}

		artistIds := make(map[string]int64, len(seed.Artists))
		for _, artist := range seed.Artists {
			input, err := validateArtistInput(artist.Input())
			if err != nil {
				return errors.Wrapf(err, "seed artist %q", artist.Name)
			}
			id, err := usecase.artistRepository.CreateArtist(ctx, tx, input)
			if err != nil {
				return err
			}
			artistIds[input.Name] = id
			report.Artists++
		}

		for _, show := range seed.Shows {
			venueId, ok := venueIds[show.Venue]
			if !ok {
				return errors.Wrapf(models.BadParameterError, "seed show references unknown venue %q", show.Venue)
			}
			artistId, ok := artistIds[show.Artist]
			if !ok {
				return errors.Wrapf(models.BadParameterError, "seed show references unknown artist %q", show.Artist)
			}
			if _, err := usecase.showRepository.CreateShow(ctx, tx, models.CreateShowInput{
				VenueId:   venueId,
				ArtistId:  artistId,
				StartTime: show.StartTime,
			}); err != nil {
				return err
			}
			report.Shows++
		}

		for range fakeCount {
			if _, err := usecase.artistRepository.CreateArtist(ctx, tx, fakeArtist()); err != nil {
				return err
			}
			report.Artists++
		}
		return nil
	})
	if err != nil {
		return models.SeedReport{}, err
	}

	logger.InfoContext(ctx, "database seeded",
		"venues", report.Venues, "artists", report.Artists, "shows", report.Shows)
	return report, nil
}

func fakeArtist() models.ArtistInput {
	address := faker.GetRealAddress()
	state := address.State
	if !models.IsKnownState(state) {
		state = "CA"
	}
	phone := faker.Phonenumber()
	if !models.IsValidPhone(phone) {
		phone = ""
	}

	input := models.ArtistInput{
		Name:   faker.Name(),
		Genres: randomGenres(),
		City:   address.City,
		State:  state,
		Phone:  phone,
	}
	if rand.IntN(2) == 0 {
		input.SeekingDescription = faker.Sentence()
	}
	return input
}

func randomGenres() []string {
	count := 1 + rand.IntN(3)
	picked := make([]string, 0, count)
	for _, i := range rand.Perm(len(models.GENRES))[:count] {
		picked = append(picked, models.GENRES[i])
	}
	return picked
}

package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/fyyur/fyyur-backend/infra"
	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/usecases"
	"github.com/fyyur/fyyur-backend/utils"
)

//go:embed data/seed.yaml
var defaultSeed []byte

// RunSeed loads the demo venues, artists and shows, from SEED_FILE when set.
func RunSeed() error {
	pgConfig := pgConfigFromEnv()
	seedConfig := seedConfigFromEnv()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	data := defaultSeed
	if seedConfig.File != "" {
		var err error
		data, err = os.ReadFile(seedConfig.File)
		if err != nil {
			return errors.Wrapf(err, "error reading seed file %s", seedConfig.File)
		}
	}
	seed, err := usecases.ParseSeedData(data)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("invalid seed data: %v", err))
		return err
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		infra.NoopTelemetry().TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error connecting to the database: %v", err))
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(repositories.NewRepositories(pool))
	seedUsecase := uc.NewSeedUsecase()
	report, err := seedUsecase.Seed(ctx, seed, seedConfig.FakeCount)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error seeding the database: %+v", err))
		return err
	}

	logger.InfoContext(ctx, "database seeded",
		slog.Int("venues", report.Venues),
		slog.Int("artists", report.Artists),
		slog.Int("shows", report.Shows))
	return nil
}

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/fyyur/fyyur-backend/api"
	"github.com/fyyur/fyyur-backend/infra"
	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/usecases"
	"github.com/fyyur/fyyur-backend/utils"
)

const shutdownTimeout = 5 * time.Second

func RunServer() error {
	apiConfig := apiConfigFromEnv()
	pgConfig := pgConfigFromEnv()
	serverConfig := ServerConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		metricsPort:   utils.GetEnv("METRICS_PORT", "9090"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
	}
	tracingConfig := infra.TelemetryConfiguration{
		ApplicationName: appName,
		Enabled:         utils.GetEnv("ENABLE_TRACING", false),
		SamplingRate:    utils.GetEnv("TRACING_SAMPLING_RATE", infra.DEFAULT_SAMPLING_RATE),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(ctx, tracingConfig)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repositories := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repositories, usecases.WithAppName(appName))

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              ":" + serverConfig.metricsPort,
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(notify)
	group.Go(func() error {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "Error while serving the app")
		}
		logger.InfoContext(ctx, "server returned")
		return nil
	})
	group.Go(func() error {
		logger.InfoContext(ctx, "starting metrics server", slog.String("port", serverConfig.metricsPort))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "Error while serving the metrics")
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		err := errors.CombineErrors(
			server.Shutdown(shutdownCtx),
			metricsServer.Shutdown(shutdownCtx),
		)
		err = errors.CombineErrors(err, telemetryRessources.Shutdown(shutdownCtx))
		if err != nil {
			return errors.Wrap(err, "Error while shutting down the server")
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	return nil
}

package cmd

import (
	"strings"
	"time"

	"github.com/fyyur/fyyur-backend/api"
	"github.com/fyyur/fyyur-backend/infra"
	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/utils"
)

const appName = "fyyur-backend"

type ServerConfig struct {
	loggingFormat string
	metricsPort   string
	sentryDsn     string
}

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "fyyur"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func apiConfigFromEnv() api.Configuration {
	env := utils.GetEnv("ENV", "development")
	sessionSecret := utils.GetEnv("SESSION_SECRET", "")
	if sessionSecret == "" && env != "development" {
		sessionSecret = utils.GetRequiredEnv[string]("SESSION_SECRET")
	}
	if sessionSecret == "" {
		sessionSecret = "fyyur-development-secret"
	}

	return api.Configuration{
		Env:                 env,
		AppName:             appName,
		Port:                utils.GetEnv("PORT", "5000"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
		AllowedOrigins:      splitList(utils.GetEnv("ALLOWED_ORIGINS", "")),
		SessionSecret:       sessionSecret,
		MaxFormSize:         int64(utils.GetEnv("MAX_FORM_SIZE", api.DEFAULT_MAX_FORM_SIZE)),
		WriteRateLimit:      utils.GetEnv("WRITE_RATE_LIMIT", 5.0),
		WriteRateBurst:      utils.GetEnv("WRITE_RATE_BURST", 20),
	}
}

func seedConfigFromEnv() models.SeedConfiguration {
	return models.SeedConfiguration{
		File:      utils.GetEnv("SEED_FILE", ""),
		FakeCount: utils.GetEnv("SEED_FAKE_COUNT", 0),
	}
}

func splitList(s string) []string {
	var values []string
	for _, value := range strings.Split(s, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

package repositories

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/fyyur/fyyur-backend/infra"
	"github.com/fyyur/fyyur-backend/utils"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsFolder = "migrations"

type Migrater struct {
	connectionString string
}

func NewMigrater(pgConfig infra.PgConfig) *Migrater {
	return &Migrater{connectionString: pgConfig.GetConnectionString()}
}

func (m *Migrater) Run(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	db, err := sql.Open("pgx", m.connectionString)
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	logger.InfoContext(ctx, "Migrations starting to setup DB: "+migrationsFolder)
	return RunMigrationsOnDb(ctx, db)
}

func RunMigrationsOnDb(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsFolder); err != nil {
		return fmt.Errorf("unable to run migrations: %w", err)
	}
	return nil
}

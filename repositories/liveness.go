package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Liveness checks that the database answers and that the listing tables have been migrated.
func (repo *FyyurDbRepository) Liveness(ctx context.Context, exec Executor) error {
	var ready bool
	err := exec.QueryRow(ctx, "SELECT to_regclass('shows') IS NOT NULL").Scan(&ready)
	if err != nil {
		return errors.Wrap(err, "database is unreachable")
	}
	if !ready {
		return errors.New("database is reachable but the shows table is missing, run the migrations")
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

// scans a single value out of a query returning one row, typically an INSERT ... RETURNING
func SqlToScalar[T any](ctx context.Context, exec Executor, query squirrel.Sqlizer) (T, error) {
	var value T
	sql, args, err := query.ToSql()
	if err != nil {
		return value, errors.Wrap(err, "can't build sql query")
	}

	err = exec.QueryRow(ctx, sql, args...).Scan(&value)
	return value, err
}

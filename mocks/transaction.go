package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// Transaction stands in for a repositories.Executor inside usecase tests. Repository mocks
// only compare it by identity, so most tests never set expectations on it.
type Transaction struct {
	mock.Mock
}

func (tx *Transaction) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := tx.Called(ctx, sql, args)
	tag, _ := ret.Get(0).(pgconn.CommandTag)
	return tag, ret.Error(1)
}

func (tx *Transaction) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ret := tx.Called(ctx, sql, args)
	rows, _ := ret.Get(0).(pgx.Rows)
	return rows, ret.Error(1)
}

func (tx *Transaction) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := tx.Called(ctx, sql, args)
	row, _ := ret.Get(0).(pgx.Row)
	return row
}

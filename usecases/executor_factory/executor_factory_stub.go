package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/fyyur/fyyur-backend/repositories"
)

// ExecutorFactoryStub hands out executors backed by a pgxmock pool, for usecase tests that run real queries.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Mock
}

type TransactionFactoryStub struct {
	exec ExecutorFactoryStub
}

func NewTransactionFactoryStub(exec ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{exec: exec}
}

func (stub TransactionFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return fn(stub.exec.Mock)
}

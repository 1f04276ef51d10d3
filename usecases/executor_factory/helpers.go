package executor_factory

import (
	"context"

	"github.com/fyyur/fyyur-backend/repositories"
)

// TransactionReturnValue runs fn in a transaction and hands back its result. The zero value is
// returned alongside any error, so a rolled back write never leaks a half-built value.
func TransactionReturnValue[T any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Executor) (T, error),
) (T, error) {
	var result T
	err := factory.Transaction(ctx, func(tx repositories.Executor) error {
		value, err := fn(tx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

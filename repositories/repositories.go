package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// FyyurDbRepository holds every query of the application database. Each method takes the
// executor to run on, which lets usecases compose them inside a transaction.
type FyyurDbRepository struct{}

type Repositories struct {
	ExecutorGetter    ExecutorGetter
	FyyurDbRepository *FyyurDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:    NewExecutorGetter(pool),
		FyyurDbRepository: &FyyurDbRepository{},
	}
}

package usecases

import (
	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/repositories/clock"
	"github.com/fyyur/fyyur-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
	appName      string
	clock        clock.Clock
}

type Option func(*options)

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

// WithClock overrides the clock used to tell past from upcoming shows.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type options struct {
	appName string
	clock   clock.Clock
}

func newUsecasesWithOptions(repositories repositories.Repositories, o *options) Usecases {
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.appName == "" {
		o.appName = "fyyur-backend"
	}
	return Usecases{
		Repositories: repositories,
		appName:      o.appName,
		clock:        o.clock,
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return newUsecasesWithOptions(repositories, o)
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.FyyurDbRepository,
	}
}

func (usecases *Usecases) NewVenueUsecase() VenueUsecase {
	return VenueUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		venueRepository:    usecases.Repositories.FyyurDbRepository,
		showRepository:     usecases.Repositories.FyyurDbRepository,
		clock:              usecases.clock,
		tracer:             usecases.tracer(),
	}
}

func (usecases *Usecases) NewArtistUsecase() ArtistUsecase {
	return ArtistUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		artistRepository:   usecases.Repositories.FyyurDbRepository,
		showRepository:     usecases.Repositories.FyyurDbRepository,
		clock:              usecases.clock,
		tracer:             usecases.tracer(),
	}
}

func (usecases *Usecases) NewShowUsecase() ShowUsecase {
	return ShowUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		showRepository:     usecases.Repositories.FyyurDbRepository,
		venueRepository:    usecases.Repositories.FyyurDbRepository,
		artistRepository:   usecases.Repositories.FyyurDbRepository,
		clock:              usecases.clock,
		tracer:             usecases.tracer(),
	}
}

func (usecases *Usecases) NewSeedUsecase() SeedUsecase {
	return SeedUsecase{
		transactionFactory: usecases.NewTransactionFactory(),
		venueRepository:    usecases.Repositories.FyyurDbRepository,
		artistRepository:   usecases.Repositories.FyyurDbRepository,
		showRepository:     usecases.Repositories.FyyurDbRepository,
		tracer:             usecases.tracer(),
	}
}

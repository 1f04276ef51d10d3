package usecases

import (
	"context"
	"time"

	"github.com/fyyur/fyyur-backend/repositories"
	"github.com/fyyur/fyyur-backend/usecases/executor_factory"
)

const livenessTimeout = 3 * time.Second

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	livenessRepository livenessRepository
}

func (u *LivenessUsecase) Liveness(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, livenessTimeout)
	defer cancel()

	return u.livenessRepository.Liveness(ctx, u.executorFactory.NewExecutor())
}

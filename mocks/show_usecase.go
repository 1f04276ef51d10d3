package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fyyur/fyyur-backend/models"
)

type ShowUsecase struct {
	mock.Mock
}

func (u *ShowUsecase) ListShows(ctx context.Context) ([]models.ShowSummary, error) {
	args := u.Called(ctx)
	return args.Get(0).([]models.ShowSummary), args.Error(1)
}

func (u *ShowUsecase) DefaultShowInput() models.CreateShowInput {
	args := u.Called()
	return args.Get(0).(models.CreateShowInput)
}

func (u *ShowUsecase) CreateShow(ctx context.Context, input models.CreateShowInput) (models.Show, error) {
	args := u.Called(ctx, input)
	return args.Get(0).(models.Show), args.Error(1)
}

type LivenessUsecase struct {
	mock.Mock
}

func (u *LivenessUsecase) Liveness(ctx context.Context) error {
	args := u.Called(ctx)
	return args.Error(0)
}

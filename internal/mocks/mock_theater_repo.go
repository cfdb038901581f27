package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/showtix/showtix/internal/domain"
)

type MockTheaterRepo struct {
	mock.Mock
	domain.TheaterRepository
}

func (m *MockTheaterRepo) GetTheatersByShow(ctx context.Context, showID int) ([]domain.Theater, error) {
	args := m.Called(ctx, showID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Theater), args.Error(1)
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/showtix/showtix/internal/domain"
)

type MockShowRepo struct {
	mock.Mock
	domain.ShowRepository
}

func (m *MockShowRepo) AddShowing(ctx context.Context, movie *domain.Movie, show *domain.Show, theaterID int) error {
	args := m.Called(ctx, movie, show, theaterID)
	return args.Error(0)
}

func (m *MockShowRepo) PurgeByPremiereDate(ctx context.Context, date time.Time) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockShowRepo) GetShowsStartingAt(ctx context.Context, date, startTime time.Time) ([]domain.ShowingInfo, error) {
	args := m.Called(ctx, date, startTime)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ShowingInfo), args.Error(1)
}

func (m *MockShowRepo) GetShowingsAtCinema(
	ctx context.Context,
	movieID, cinemaID int,
	from, to time.Time,
) ([]domain.ShowingInfo, error) {
	args := m.Called(ctx, movieID, cinemaID, from, to)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ShowingInfo), args.Error(1)
}

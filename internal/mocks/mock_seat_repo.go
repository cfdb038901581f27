package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/showtix/showtix/internal/domain"
)

type MockSeatRepo struct {
	mock.Mock
	domain.SeatRepository
}

func (m *MockSeatRepo) FindAlternativeSeats(ctx context.Context, bookingID int) ([]domain.ShowSeat, error) {
	args := m.Called(ctx, bookingID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ShowSeat), args.Error(1)
}

func (m *MockSeatRepo) Reassign(ctx context.Context, bookingID, newSeatID int) error {
	args := m.Called(ctx, bookingID, newSeatID)
	return args.Error(0)
}

func (m *MockSeatRepo) GetByBookingID(ctx context.Context, bookingID int) (*domain.ShowSeat, error) {
	args := m.Called(ctx, bookingID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ShowSeat), args.Error(1)
}

package domain

import (
	"context"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusPaid      BookingStatus = "Paid"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusPaid, BookingStatusCancelled:
		return true
	}

	return false
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Cancelled is terminal; cancellation itself is always reachable.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !next.IsValid() {
		return false
	}

	switch s {
	case BookingStatusPending:
		return next == BookingStatusPaid || next == BookingStatusCancelled
	case BookingStatusPaid:
		return next == BookingStatusCancelled
	}

	return false
}

type Booking struct {
	ID          int
	Status      BookingStatus
	BookingTime time.Time
	SeatCount   int
	ShowID      int
	UserEmail   string
}

// BookingDetail is the denormalized view a user sees for one of their
// bookings: what is playing, where, and which seats are held.
type BookingDetail struct {
	BookingID    int
	Status       BookingStatus
	MovieTitle   string
	PremiereDate time.Time
	StartTime    time.Time
	TheaterName  string
	SeatNumbers  []int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*Booking, error)
	UpdateStatus(ctx context.Context, id int, next BookingStatus) error
	CancelAllPending(ctx context.Context) (int, error)
	PurgeCancelled(ctx context.Context) (int, error)
	GetDetailsByUserEmail(ctx context.Context, email string) ([]BookingDetail, error)
}

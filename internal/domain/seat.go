package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ShowSeat is a seat slot scoped to one show. A nil BookingID means the
// seat is free for that show; a non-nil one means exactly one booking
// holds it.
type ShowSeat struct {
	ID         int
	ShowID     int
	TheaterID  int
	SeatNumber int
	Price      decimal.Decimal
	BookingID  *int
}

type SeatRepository interface {
	// FindAlternativeSeats returns the free seats of the same show and the
	// same price tier as the seat currently held by the booking. An empty
	// result is not an error; it means no alternative exists.
	FindAlternativeSeats(ctx context.Context, bookingID int) ([]ShowSeat, error)

	// Reassign moves the booking from its current seat to newSeatID. Release
	// and acquire happen in one transaction: either the booking ends up
	// holding exactly the new seat, or nothing changed.
	Reassign(ctx context.Context, bookingID, newSeatID int) error

	GetByBookingID(ctx context.Context, bookingID int) (*ShowSeat, error)
}

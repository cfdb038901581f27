package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID        int
	BookingID int
	Amount    decimal.Decimal
	Method    string
	Reference uuid.UUID
	CreatedAt time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByBookingID(ctx context.Context, bookingID int) (*Payment, error)
	DeleteByBookingID(ctx context.Context, bookingID int) error
}

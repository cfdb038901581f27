package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrSeatUnavailable      = errors.New("seat is no longer available")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrConstraintViolation  = errors.New("operation blocked by dependent records")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrBookingAlreadyExists = errors.New("booking already exists")
	ErrShowingAlreadyExists = errors.New("movie or show already exists")
	ErrPaymentAlreadyExists = errors.New("payment already exists for booking")
)

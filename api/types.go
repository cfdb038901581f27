// Package api holds the request and response shapes of the booking API.
package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date serialized as "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format 2006-01-02", s)
	}

	d.Time = t

	return nil
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Phone     int64  `json:"phone" validate:"required,min=1000000000,max=99999999999"`
	Password  string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     int64     `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserSummary struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type PendingUsersResponse struct {
	Users []UserSummary `json:"users"`
}

type CreateBookingRequest struct {
	Id          int       `json:"id" validate:"required,min=1"`
	Status      string    `json:"status" validate:"required,booking_status"`
	BookingTime time.Time `json:"bookingTime" validate:"required"`
	SeatCount   int       `json:"seatCount" validate:"required,min=1"`
	ShowId      int       `json:"showId" validate:"required,min=1"`
	UserEmail   string    `json:"userEmail" validate:"required,email"`
}

type BookingResponse struct {
	Id          int       `json:"id"`
	Status      string    `json:"status"`
	BookingTime time.Time `json:"bookingTime"`
	SeatCount   int       `json:"seatCount"`
	ShowId      int       `json:"showId"`
	UserEmail   string    `json:"userEmail"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

type BulkUpdateResponse struct {
	Updated int `json:"updated"`
}

type PurgeResponse struct {
	Removed int `json:"removed"`
}

type Seat struct {
	Id         int             `json:"id"`
	ShowId     int             `json:"showId"`
	TheaterId  int             `json:"theaterId"`
	SeatNumber int             `json:"seatNumber"`
	Price      decimal.Decimal `json:"price"`
}

type BookingSeatResponse struct {
	BookingId int  `json:"bookingId"`
	Seat      Seat `json:"seat"`
}

type AlternativeSeatsResponse struct {
	BookingId int    `json:"bookingId"`
	Seats     []Seat `json:"seats"`
}

type ReassignSeatRequest struct {
	SeatId int `json:"seatId" validate:"required,min=1"`
}

type ReassignSeatResponse struct {
	BookingId int `json:"bookingId"`
	SeatId    int `json:"seatId"`
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Method string          `json:"method" validate:"required,max=30"`
}

type PaymentResponse struct {
	Id        int             `json:"id"`
	BookingId int             `json:"bookingId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NewMovie struct {
	Id          int    `json:"id" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,max=200"`
	ReleaseDate Date   `json:"releaseDate" validate:"required"`
	Country     string `json:"country" validate:"required,max=60"`
	Duration    int    `json:"duration" validate:"min=0"`
}

type NewShow struct {
	Id           int       `json:"id" validate:"required,min=1"`
	PremiereDate Date      `json:"premiereDate" validate:"required"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
}

type AddShowingRequest struct {
	Movie     NewMovie `json:"movie" validate:"required"`
	Show      NewShow  `json:"show" validate:"required"`
	TheaterId int      `json:"theaterId" validate:"required,min=1"`
}

type Showing struct {
	ShowId        int       `json:"showId"`
	MovieTitle    string    `json:"movieTitle"`
	MovieDuration int       `json:"movieDuration"`
	PremiereDate  Date      `json:"premiereDate"`
	StartTime     time.Time `json:"startTime"`
}

type ShowingListResponse struct {
	Showings []Showing `json:"showings"`
}

type Theater struct {
	Id       int    `json:"id"`
	CinemaId int    `json:"cinemaId"`
	Name     string `json:"name"`
}

type ShowTheatersResponse struct {
	ShowId   int       `json:"showId"`
	Theaters []Theater `json:"theaters"`
}

type MovieSummary struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate Date   `json:"releaseDate"`
	Country     string `json:"country"`
	Duration    int    `json:"duration"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata Metadata       `json:"metadata"`
}

type BookingDetail struct {
	BookingId    int       `json:"bookingId"`
	Status       string    `json:"status"`
	MovieTitle   string    `json:"movieTitle"`
	PremiereDate Date      `json:"premiereDate"`
	StartTime    time.Time `json:"startTime"`
	TheaterName  string    `json:"theaterName"`
	SeatNumbers  []int     `json:"seatNumbers"`
}

type UserBookingsResponse struct {
	Email    string          `json:"email"`
	Bookings []BookingDetail `json:"bookings"`
}

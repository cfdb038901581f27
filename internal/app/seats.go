package app

import (
	"errors"
	"net/http"

	"github.com/showtix/showtix/api"
	"github.com/showtix/showtix/internal/domain"
)

func (app *Application) GetAlternativeSeats(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, err := app.seatRepo.FindAlternativeSeats(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.AlternativeSeatsResponse{
		BookingId: bookingID,
		Seats:     toApiSeats(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingSeat(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetByBookingID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingSeatResponse{
		BookingId: bookingID,
		Seat: api.Seat{
			Id:         seat.ID,
			ShowId:     seat.ShowID,
			TheaterId:  seat.TheaterID,
			SeatNumber: seat.SeatNumber,
			Price:      seat.Price,
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ReassignSeat(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.ReassignSeatRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	err = app.seatRepo.Reassign(r.Context(), bookingID, req.SeatId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatUnavailable):
			app.conflictResponse(w, r, "The selected seat is no longer available")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ReassignSeatResponse{
		BookingId: bookingID,
		SeatId:    req.SeatId,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeats(seats []domain.ShowSeat) []api.Seat {
	apiSeats := make([]api.Seat, len(seats))

	for i, seat := range seats {
		apiSeats[i] = api.Seat{
			Id:         seat.ID,
			ShowId:     seat.ShowID,
			TheaterId:  seat.TheaterID,
			SeatNumber: seat.SeatNumber,
			Price:      seat.Price,
		}
	}

	return apiSeats
}

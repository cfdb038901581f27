package app

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/showtix/showtix/api"
	"github.com/showtix/showtix/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	booking := domain.Booking{
		ID:          req.Id,
		Status:      domain.BookingStatus(req.Status),
		BookingTime: req.BookingTime,
		SeatCount:   req.SeatCount,
		ShowID:      req.ShowId,
		UserEmail:   req.UserEmail,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingAlreadyExists):
			app.conflictResponse(w, r, "A booking with this id already exists")
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "The referenced show or user does not exist")
		case errors.Is(err, domain.ErrInvalidStatus):
			app.unprocessableEntityResponse(w, r, "Invalid booking status")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toBookingResponse(&booking)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.UpdateBookingStatusRequest

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

	err = app.bookingRepo.UpdateStatus(r.Context(), bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrInvalidStatus):
			app.unprocessableEntityResponse(w, r, "The booking status does not allow this transition")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toBookingResponse(booking)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelPendingBookings(w http.ResponseWriter, r *http.Request) {
	updated, err := app.bookingRepo.CancelAllPending(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BulkUpdateResponse{Updated: updated}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PurgeCancelledBookings(w http.ResponseWriter, r *http.Request) {
	removed, err := app.bookingRepo.PurgeCancelled(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConstraintViolation):
			app.conflictResponse(w, r, "Cancelled bookings still have dependent records")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PurgeResponse{Removed: removed}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.RecordPaymentRequest

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

	payment := domain.Payment{
		BookingID: bookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: uuid.New(),
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrPaymentAlreadyExists):
			app.conflictResponse(w, r, "A payment for this booking already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PaymentResponse{
		Id:        payment.ID,
		BookingId: payment.BookingID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Reference: payment.Reference.String(),
		CreatedAt: payment.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payment, err := app.paymentRepo.GetByBookingID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PaymentResponse{
		Id:        payment.ID,
		BookingId: payment.BookingID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Reference: payment.Reference.String(),
		CreatedAt: payment.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ClearPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.paymentRepo.DeleteByBookingID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	if booking == nil {
		return api.BookingResponse{}
	}

	return api.BookingResponse{
		Id:          booking.ID,
		Status:      string(booking.Status),
		BookingTime: booking.BookingTime,
		SeatCount:   booking.SeatCount,
		ShowId:      booking.ShowID,
		UserEmail:   booking.UserEmail,
	}
}

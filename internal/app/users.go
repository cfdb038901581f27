package app

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"

	"github.com/showtix/showtix/api"
	"github.com/showtix/showtix/internal/domain"
)

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterUserRequest

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

	user := domain.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	err = user.Password.Set(req.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.errorResponse(w, r, http.StatusBadRequest, "A user with this email address already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.UserResponse{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if _, err := mail.ParseAddress(email); err != nil {
		app.badRequestResponse(w, r, errors.New("invalid email parameter"))
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	details, err := app.bookingRepo.GetDetailsByUserEmail(r.Context(), user.Email)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	bookings := make([]api.BookingDetail, len(details))
	for i, d := range details {
		bookings[i] = api.BookingDetail{
			BookingId:    d.BookingID,
			Status:       string(d.Status),
			MovieTitle:   d.MovieTitle,
			PremiereDate: api.Date{Time: d.PremiereDate},
			StartTime:    d.StartTime,
			TheaterName:  d.TheaterName,
			SeatNumbers:  d.SeatNumbers,
		}
	}

	resp := api.UserBookingsResponse{
		Email:    user.Email,
		Bookings: bookings,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListUsersWithPendingBookings(w http.ResponseWriter, r *http.Request) {
	users, err := app.userRepo.GetUsersWithPendingBookings(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = api.UserSummary{
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
	}

	resp := api.PendingUsersResponse{Users: summaries}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

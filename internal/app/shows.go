package app

import (
	"errors"
	"net/http"

	"github.com/showtix/showtix/api"
	"github.com/showtix/showtix/internal/domain"
)

func (app *Application) AddShowing(w http.ResponseWriter, r *http.Request) {
	var req api.AddShowingRequest

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

	movie := domain.Movie{
		ID:          req.Movie.Id,
		Title:       req.Movie.Title,
		ReleaseDate: req.Movie.ReleaseDate.Time,
		Country:     req.Movie.Country,
		Duration:    req.Movie.Duration,
	}

	show := domain.Show{
		ID:           req.Show.Id,
		MovieID:      req.Movie.Id,
		PremiereDate: req.Show.PremiereDate.Time,
		StartTime:    req.Show.StartTime,
		EndTime:      req.Show.EndTime,
	}

	err = app.showRepo.AddShowing(r.Context(), &movie, &show, req.TheaterId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "The referenced theater does not exist")
		case errors.Is(err, domain.ErrShowingAlreadyExists):
			app.conflictResponse(w, r, "A movie or show with this id already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.Showing{
		ShowId:        show.ID,
		MovieTitle:    movie.Title,
		MovieDuration: movie.Duration,
		PremiereDate:  api.Date{Time: show.PremiereDate},
		StartTime:     show.StartTime,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PurgeShowsByDate(w http.ResponseWriter, r *http.Request) {
	date, err := app.readDateQuery(r, "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	removed, err := app.showRepo.PurgeByPremiereDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConstraintViolation):
			app.conflictResponse(w, r, "The shows still have dependent records")
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

func (app *Application) GetShowTheaters(w http.ResponseWriter, r *http.Request) {
	showID, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	theaters, err := app.theaterRepo.GetTheatersByShow(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiTheaters := make([]api.Theater, len(theaters))
	for i, t := range theaters {
		apiTheaters[i] = api.Theater{
			Id:       t.ID,
			CinemaId: t.CinemaID,
			Name:     t.Name,
		}
	}

	resp := api.ShowTheatersResponse{
		ShowId:   showID,
		Theaters: apiTheaters,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowsStartingAt(w http.ResponseWriter, r *http.Request) {
	date, err := app.readDateQuery(r, "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	startTime, err := app.readTimeQuery(r, "time")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showings, err := app.showRepo.GetShowsStartingAt(r.Context(), date, startTime)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowingListResponse{Showings: toApiShowings(showings)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaShowings(w http.ResponseWriter, r *http.Request) {
	cinemaID, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movieID, err := app.readIntQuery(r, "movieId", 0)
	if err != nil || movieID < 1 {
		app.badRequestResponse(w, r, errors.New("invalid movieId query parameter"))
		return
	}

	from, err := app.readDateQuery(r, "from")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to, err := app.readDateQuery(r, "to")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if to.Before(from) {
		app.badRequestResponse(w, r, errors.New("to must not be before from"))
		return
	}

	showings, err := app.showRepo.GetShowingsAtCinema(r.Context(), movieID, cinemaID, from, to)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowingListResponse{Showings: toApiShowings(showings)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowings(showings []domain.ShowingInfo) []api.Showing {
	apiShowings := make([]api.Showing, len(showings))

	for i, s := range showings {
		apiShowings[i] = api.Showing{
			ShowId:        s.ShowID,
			MovieTitle:    s.MovieTitle,
			MovieDuration: s.MovieDuration,
			PremiereDate:  api.Date{Time: s.PremiereDate},
			StartTime:     s.StartTime,
		}
	}

	return apiShowings
}

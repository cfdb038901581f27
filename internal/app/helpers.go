package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/showtix/showtix/internal/jsonutil"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

// readIDParam pulls a positive integer URL parameter out of the request.
func (app *Application) readIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name + " parameter")
	}

	return id, nil
}

// readDateQuery parses a required "2006-01-02" query parameter.
func (app *Application) readDateQuery(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, errors.New("missing " + name + " query parameter")
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.New("invalid " + name + " query parameter, expected format 2006-01-02")
	}

	return date, nil
}

// readTimeQuery parses a required "15:04" query parameter.
func (app *Application) readTimeQuery(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, errors.New("missing " + name + " query parameter")
	}

	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, errors.New("invalid " + name + " query parameter, expected format 15:04")
	}

	return t, nil
}

// readIntQuery parses an optional integer query parameter, falling back
// to the given default when the parameter is absent.
func (app *Application) readIntQuery(r *http.Request, name string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("invalid " + name + " query parameter")
	}

	return n, nil
}

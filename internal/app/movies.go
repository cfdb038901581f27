package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/showtix/showtix/api"
	"github.com/showtix/showtix/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"

	MaxPageSize = 100
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	filters := domain.MovieFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Sort:     DefaultSort,
		},
		Term: r.URL.Query().Get("term"),
	}

	page, err := app.readIntQuery(r, "page", DefaultPage)
	if err != nil || page < 1 {
		app.badRequestResponse(w, r, errors.New("invalid page query parameter"))
		return
	}
	filters.Page = page

	pageSize, err := app.readIntQuery(r, "pageSize", DefaultPageSize)
	if err != nil || pageSize < 1 || pageSize > MaxPageSize {
		app.badRequestResponse(w, r, errors.New("invalid pageSize query parameter"))
		return
	}
	filters.PageSize = pageSize

	if sort := r.URL.Query().Get("sort"); sort != "" {
		if !isSortableColumn(sort) {
			app.badRequestResponse(w, r, errors.New("invalid sort query parameter"))
			return
		}
		filters.Sort = sort
	}

	if releasedAfter := r.URL.Query().Get("releasedAfter"); releasedAfter != "" {
		date, err := time.Parse("2006-01-02", releasedAfter)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("invalid releasedAfter query parameter, expected format 2006-01-02"))
			return
		}
		filters.ReleasedAfter = date
	}

	movies, metadata, err := app.movieRepo.Search(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		ReleaseDate: api.Date{Time: movie.ReleaseDate},
		Country:     movie.Country,
		Duration:    movie.Duration,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func isSortableColumn(sort string) bool {
	switch sort {
	case "id", "-id", "title", "-title", "release_date", "-release_date":
		return true
	}

	return false
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:          movie.ID,
			Title:       movie.Title,
			ReleaseDate: api.Date{Time: movie.ReleaseDate},
			Country:     movie.Country,
			Duration:    movie.Duration,
		}
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

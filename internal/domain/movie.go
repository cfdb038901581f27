package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	ReleaseDate time.Time
	Country     string
	Duration    int
}

type MovieFilters struct {
	Pagination
	Term          string
	ReleasedAfter time.Time
}

type MovieRepository interface {
	Search(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}

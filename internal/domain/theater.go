package domain

import "context"

type Theater struct {
	ID       int
	CinemaID int
	Name     string
}

type TheaterRepository interface {
	GetTheatersByShow(ctx context.Context, showID int) ([]Theater, error)
}

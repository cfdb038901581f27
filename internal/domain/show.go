package domain

import (
	"context"
	"time"
)

type Show struct {
	ID           int
	MovieID      int
	PremiereDate time.Time
	StartTime    time.Time
	EndTime      time.Time
}

// ShowingInfo pairs a show with the movie it screens, as reported to
// callers browsing a cinema's programme.
type ShowingInfo struct {
	ShowID        int
	MovieTitle    string
	MovieDuration int
	PremiereDate  time.Time
	StartTime     time.Time
}

type ShowRepository interface {
	// AddShowing registers a new movie together with its first show and the
	// theater it plays in, as one atomic unit.
	AddShowing(ctx context.Context, movie *Movie, show *Show, theaterID int) error

	// PurgeByPremiereDate removes every show premiering on the given date
	// along with all dependent rows, and reports how many shows were removed.
	PurgeByPremiereDate(ctx context.Context, date time.Time) (int, error)

	GetShowsStartingAt(ctx context.Context, date, startTime time.Time) ([]ShowingInfo, error)
	GetShowingsAtCinema(ctx context.Context, movieID, cinemaID int, from, to time.Time) ([]ShowingInfo, error)
}

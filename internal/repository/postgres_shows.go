package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showtix/showtix/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) AddShowing(
	ctx context.Context,
	movie *domain.Movie,
	show *domain.Show,
	theaterID int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var exists bool

		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM theaters WHERE id = $1)`, theaterID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO movies (id, title, release_date, country, duration)
			VALUES ($1, $2, $3, $4, $5)
		`, movie.ID, movie.Title, movie.ReleaseDate, movie.Country, movie.Duration)

		if err != nil {
			return mapShowingError(err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO shows (id, movie_id, premiere_date, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5)
		`, show.ID, movie.ID, show.PremiereDate, show.StartTime, show.EndTime)

		if err != nil {
			return mapShowingError(err)
		}

		_, err = tx.Exec(ctx, `INSERT INTO plays (show_id, theater_id) VALUES ($1, $2)`, show.ID, theaterID)
		if err != nil {
			return mapShowingError(err)
		}

		show.MovieID = movie.ID

		return nil
	})
}

func mapShowingError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrShowingAlreadyExists
	}

	return err
}

func (p *PostgresShowRepository) PurgeByPremiereDate(ctx context.Context, date time.Time) (int, error) {
	var removed int

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Dependency order: plays and show_seats hang off shows, payments
		// hang off bookings, bookings hang off shows. The show rows go last.
		statements := []string{
			`DELETE FROM plays
				WHERE show_id IN (SELECT id FROM shows WHERE premiere_date = $1)`,
			`DELETE FROM show_seats
				WHERE show_id IN (SELECT id FROM shows WHERE premiere_date = $1)`,
			`DELETE FROM payments
				WHERE booking_id IN (
					SELECT id FROM bookings
					WHERE show_id IN (SELECT id FROM shows WHERE premiere_date = $1)
				)`,
			`DELETE FROM bookings
				WHERE show_id IN (SELECT id FROM shows WHERE premiere_date = $1)`,
		}

		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt, date); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM shows WHERE premiere_date = $1`, date)
		if err != nil {
			return err
		}

		removed = int(tag.RowsAffected())

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			// Some row outside the date filter still references a row we
			// tried to delete. Nothing has been applied.
			return 0, domain.ErrConstraintViolation
		}

		return 0, err
	}

	return removed, nil
}

func (p *PostgresShowRepository) GetShowsStartingAt(
	ctx context.Context,
	date, startTime time.Time) ([]domain.ShowingInfo, error) {

	query := `
		SELECT s.id, m.title, m.duration, s.premiere_date, s.start_time
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		WHERE s.premiere_date = $1 AND s.start_time::time = $2::time
		ORDER BY s.id
	`

	return p.queryShowings(ctx, query, date, startTime)
}

func (p *PostgresShowRepository) GetShowingsAtCinema(
	ctx context.Context,
	movieID, cinemaID int,
	from, to time.Time) ([]domain.ShowingInfo, error) {

	query := `
		SELECT s.id, m.title, m.duration, s.premiere_date, s.start_time
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		WHERE s.movie_id = $1
			AND s.premiere_date BETWEEN $3 AND $4
			AND EXISTS (
				SELECT 1
				FROM plays p
				JOIN theaters t ON t.id = p.theater_id
				WHERE p.show_id = s.id AND t.cinema_id = $2
			)
		ORDER BY s.premiere_date, s.start_time
	`

	return p.queryShowings(ctx, query, movieID, cinemaID, from, to)
}

func (p *PostgresShowRepository) queryShowings(
	ctx context.Context,
	query string,
	args ...any) ([]domain.ShowingInfo, error) {

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showings := make([]domain.ShowingInfo, 0)

	for rows.Next() {
		var showing domain.ShowingInfo

		err = rows.Scan(
			&showing.ShowID,
			&showing.MovieTitle,
			&showing.MovieDuration,
			&showing.PremiereDate,
			&showing.StartTime,
		)

		if err != nil {
			return nil, err
		}

		showings = append(showings, showing)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showings, nil
}

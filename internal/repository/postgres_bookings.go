package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showtix/showtix/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	// Reject unknown status values before they reach storage.
	if !booking.Status.IsValid() {
		return domain.ErrInvalidStatus
	}

	query := `
		INSERT INTO bookings (id, status, booking_time, seat_count, show_id, user_email)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.db.Exec(ctx,
		query,
		booking.ID,
		booking.Status,
		booking.BookingTime,
		booking.SeatCount,
		booking.ShowID,
		booking.UserEmail,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return domain.ErrBookingAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				// The referenced show or user does not exist.
				return domain.ErrRecordNotFound
			case pgerrcode.CheckViolation:
				return domain.ErrInvalidStatus
			}
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, status, booking_time, seat_count, show_id, user_email
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Status,
		&booking.BookingTime,
		&booking.SeatCount,
		&booking.ShowID,
		&booking.UserEmail,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) UpdateStatus(ctx context.Context, id int, next domain.BookingStatus) error {
	if !next.IsValid() {
		return domain.ErrInvalidStatus
	}

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var current domain.BookingStatus

		err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		if !current.CanTransitionTo(next) {
			return domain.ErrInvalidStatus
		}

		_, err = tx.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, next, id)

		return err
	})
}

func (p *PostgresBookingRepository) CancelAllPending(ctx context.Context) (int, error) {
	tag, err := p.db.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE status = $2`,
		domain.BookingStatusCancelled,
		domain.BookingStatusPending,
	)

	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (p *PostgresBookingRepository) PurgeCancelled(ctx context.Context) (int, error) {
	tag, err := p.db.Exec(ctx, `DELETE FROM bookings WHERE status = $1`, domain.BookingStatusCancelled)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			// A payment or held seat still references a cancelled booking.
			// Deliberately not cascaded; callers clear payments first.
			return 0, domain.ErrConstraintViolation
		}

		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (p *PostgresBookingRepository) GetDetailsByUserEmail(ctx context.Context, email string) ([]domain.BookingDetail, error) {
	query := `
		SELECT
			b.id,
			b.status,
			m.title,
			s.premiere_date,
			s.start_time,
			COALESCE(t.name, ''),
			COALESCE(array_agg(ss.seat_number ORDER BY ss.seat_number) FILTER (WHERE ss.id IS NOT NULL), '{}')
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		LEFT JOIN show_seats ss ON ss.booking_id = b.id
		LEFT JOIN LATERAL (
			SELECT th.name
			FROM plays p
			JOIN theaters th ON th.id = p.theater_id
			WHERE p.show_id = s.id
			ORDER BY th.id
			LIMIT 1
		) t ON true
		WHERE b.user_email = $1
		GROUP BY b.id, b.status, m.title, s.premiere_date, s.start_time, t.name
		ORDER BY b.id
	`

	rows, err := p.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.BookingDetail, 0)

	for rows.Next() {
		var detail domain.BookingDetail

		err = rows.Scan(
			&detail.BookingID,
			&detail.Status,
			&detail.MovieTitle,
			&detail.PremiereDate,
			&detail.StartTime,
			&detail.TheaterName,
			&detail.SeatNumbers,
		)

		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

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

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetByBookingID(ctx context.Context, bookingID int) (*domain.ShowSeat, error) {
	query := `
		SELECT id, show_id, theater_id, seat_number, price, booking_id
		FROM show_seats
		WHERE booking_id = $1
	`

	var seat domain.ShowSeat

	err := p.db.QueryRow(ctx, query, bookingID).Scan(
		&seat.ID,
		&seat.ShowID,
		&seat.TheaterID,
		&seat.SeatNumber,
		&seat.Price,
		&seat.BookingID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &seat, nil
}

func (p *PostgresSeatRepository) FindAlternativeSeats(ctx context.Context, bookingID int) ([]domain.ShowSeat, error) {
	exists, err := p.bookingExists(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrRecordNotFound
	}

	query := `
		SELECT alt.id, alt.show_id, alt.theater_id, alt.seat_number, alt.price
		FROM show_seats cur
		JOIN show_seats alt
			ON alt.show_id = cur.show_id AND alt.price = cur.price
		WHERE cur.booking_id = $1 AND alt.booking_id IS NULL
		ORDER BY alt.id
	`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.ShowSeat, 0)

	for rows.Next() {
		var seat domain.ShowSeat

		err = rows.Scan(
			&seat.ID,
			&seat.ShowID,
			&seat.TheaterID,
			&seat.SeatNumber,
			&seat.Price,
		)

		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) Reassign(ctx context.Context, bookingID, newSeatID int) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Lock the seat currently held by the booking so a concurrent
		// reassignment of the same booking serializes behind us.
		query := `
			SELECT id, show_id, price
			FROM show_seats
			WHERE booking_id = $1
			FOR UPDATE
		`

		var old domain.ShowSeat

		err := tx.QueryRow(ctx, query, bookingID).Scan(&old.ID, &old.ShowID, &old.Price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, `UPDATE show_seats SET booking_id = NULL WHERE id = $1`, old.ID)
		if err != nil {
			return err
		}

		// Acquire conditionally: the target must still be free and must match
		// the vacated seat's show and price tier. Zero rows affected means a
		// concurrent booking won the race (or the seat never qualified), and
		// the rollback restores the seat we just released.
		tag, err := tx.Exec(ctx, `
			UPDATE show_seats
			SET booking_id = $1
			WHERE id = $2 AND booking_id IS NULL AND show_id = $3 AND price = $4
		`, bookingID, newSeatID, old.ShowID, old.Price)

		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrSeatUnavailable
		}

		return nil
	})

	if err != nil {
		// Two bookings swapping seats in opposite order can deadlock;
		// postgres aborts one of them. The aborted side lost the seat it
		// wanted, same as losing the conditional update.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.DeadlockDetected {
			return domain.ErrSeatUnavailable
		}

		return err
	}

	return nil
}

func (p *PostgresSeatRepository) bookingExists(ctx context.Context, bookingID int) (bool, error) {
	var exists bool

	err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, bookingID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showtix/showtix/internal/domain"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetTheatersByShow(ctx context.Context, showID int) ([]domain.Theater, error) {
	query := `
		SELECT t.id, t.cinema_id, t.name
		FROM theaters t
		JOIN plays p ON p.theater_id = t.id
		WHERE p.show_id = $1
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)

	for rows.Next() {
		var theater domain.Theater

		err = rows.Scan(&theater.ID, &theater.CinemaID, &theater.Name)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

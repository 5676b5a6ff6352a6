package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyfare/skyfare/internal/models"
)

// PostgresCatalog reads flights from a Postgres flights table.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog creates a provider over the given connection pool.
func NewPostgresCatalog(pool *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{pool: pool}
}

func (c *PostgresCatalog) ListFlights(ctx context.Context) ([]models.Flight, error) {
	query := `
		SELECT id, airline, origin, destination, departure_time, arrival_time,
		       price, terminal, gate, total_seats, remaining_seats
		FROM flights
		WHERE departure_time > NOW()
		ORDER BY departure_time ASC
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		var f models.Flight
		err := rows.Scan(
			&f.ID, &f.Airline, &f.From, &f.To,
			&f.DepartureTime, &f.ArrivalTime, &f.Price,
			&f.Terminal, &f.Gate, &f.TotalSeats, &f.RemainingSeats,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, nil
}

func (c *PostgresCatalog) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	query := `
		SELECT id, airline, origin, destination, departure_time, arrival_time,
		       price, terminal, gate, total_seats, remaining_seats
		FROM flights
		WHERE id = $1
	`

	var f models.Flight
	err := c.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Airline, &f.From, &f.To,
		&f.DepartureTime, &f.ArrivalTime, &f.Price,
		&f.Terminal, &f.Gate, &f.TotalSeats, &f.RemainingSeats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	return &f, nil
}

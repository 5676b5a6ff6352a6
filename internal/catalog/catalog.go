package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/skyfare/skyfare/internal/models"
)

// ErrNotFound is returned when a flight id does not resolve
var ErrNotFound = errors.New("flight not found")

// Provider supplies the flight list and per-flight metadata. Flights are
// read-only to every other component; the core does not care whether the
// provider is backed by a remote endpoint, a database or an in-memory fixture.
type Provider interface {
	ListFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, id string) (*models.Flight, error)
}

// MemoryCatalog is a fixture-backed provider used for local development
// and tests.
type MemoryCatalog struct {
	flights map[string]models.Flight
	order   []string
}

// NewMemoryCatalog creates a provider over the given flights, preserving
// their order for listing.
func NewMemoryCatalog(flights []models.Flight) *MemoryCatalog {
	c := &MemoryCatalog{flights: make(map[string]models.Flight, len(flights))}
	for _, f := range flights {
		c.flights[f.ID] = f
		c.order = append(c.order, f.ID)
	}
	return c
}

// NewSampleCatalog creates a provider preloaded with demo flights.
func NewSampleCatalog() *MemoryCatalog {
	now := time.Now()
	return NewMemoryCatalog([]models.Flight{
		{
			ID:             "FL001",
			Airline:        "American Airlines",
			From:           "New York (JFK)",
			To:             "Los Angeles (LAX)",
			DepartureTime:  now.Add(24 * time.Hour),
			ArrivalTime:    now.Add(30 * time.Hour),
			Price:          150.00,
			Terminal:       "T4",
			Gate:           "B22",
			TotalSeats:     180,
			RemainingSeats: 150,
		},
		{
			ID:             "FL002",
			Airline:        "United",
			From:           "Chicago (ORD)",
			To:             "Miami (MIA)",
			DepartureTime:  now.Add(48 * time.Hour),
			ArrivalTime:    now.Add(52 * time.Hour),
			Price:          200.00,
			Terminal:       "T1",
			Gate:           "C5",
			TotalSeats:     150,
			RemainingSeats: 150,
		},
		{
			ID:             "FL003",
			Airline:        "Delta",
			From:           "San Francisco (SFO)",
			To:             "Seattle (SEA)",
			DepartureTime:  now.Add(12 * time.Hour),
			ArrivalTime:    now.Add(14 * time.Hour),
			Price:          120.00,
			Terminal:       "T2",
			Gate:           "A11",
			TotalSeats:     210,
			RemainingSeats: 0,
		},
	})
}

func (c *MemoryCatalog) ListFlights(ctx context.Context) ([]models.Flight, error) {
	flights := make([]models.Flight, 0, len(c.order))
	for _, id := range c.order {
		flights = append(flights, c.flights[id])
	}
	return flights, nil
}

func (c *MemoryCatalog) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	f, ok := c.flights[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

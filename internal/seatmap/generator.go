package seatmap

import (
	"fmt"
	"math/rand"

	"github.com/skyfare/skyfare/internal/models"
)

// seatColumns is the cabin layout used for every flight
var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

// Generate derives a seat layout from a flight's capacity counts. It produces
// exactly totalSeats records of which totalSeats-remainingSeats are occupied,
// chosen by uniform sampling without replacement. The occupied set differs
// between calls unless the caller seeds rng; occupancy is synthesized, not
// authoritative.
func Generate(flight *models.Flight, rng *rand.Rand) ([]models.Seat, error) {
	total := flight.TotalSeats
	remaining := flight.RemainingSeats

	if total <= 0 {
		return nil, fmt.Errorf("invalid total seats %d for flight %s", total, flight.ID)
	}
	if remaining < 0 || remaining > total {
		return nil, fmt.Errorf("invalid remaining seats %d/%d for flight %s", remaining, total, flight.ID)
	}

	seats := make([]models.Seat, 0, total)
	for i := 0; i < total; i++ {
		row := i/len(seatColumns) + 1
		col := seatColumns[i%len(seatColumns)]
		seats = append(seats, models.Seat{
			ID:       fmt.Sprintf("%d%s", row, col),
			FlightID: flight.ID,
			Row:      row,
			Column:   col,
			Status:   models.SeatStatusFree,
			Price:    flight.Price,
		})
	}

	occupied := total - remaining
	for _, idx := range rng.Perm(total)[:occupied] {
		seats[idx].Status = models.SeatStatusOccupied
	}

	return seats, nil
}

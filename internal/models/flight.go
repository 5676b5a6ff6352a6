package models

import "time"

// Flight represents a bookable flight offering
type Flight struct {
	ID             string    `json:"id"`
	Airline        string    `json:"airline"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	Price          float64   `json:"price"`
	Terminal       string    `json:"terminal"`
	Gate           string    `json:"gate"`
	TotalSeats     int       `json:"totalSeats"`
	RemainingSeats int       `json:"remainingSeats"`
}

// Seat represents one bookable unit of capacity on a flight
type Seat struct {
	ID       string     `json:"id"`
	FlightID string     `json:"flightId"`
	Row      int        `json:"row"`
	Column   string     `json:"column"`
	Status   SeatStatus `json:"status"`
	Price    float64    `json:"price"`
}

type SeatStatus string

const (
	SeatStatusFree     SeatStatus = "free"
	SeatStatusOccupied SeatStatus = "occupied"
	SeatStatusSelected SeatStatus = "selected"
)

// SeatMap is the per-flight seat layout returned to the UI
type SeatMap struct {
	FlightID string `json:"flightId"`
	Seats    []Seat `json:"seats"`
}

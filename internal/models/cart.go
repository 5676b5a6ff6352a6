package models

// CartItem is a confirmed (not yet purchased) reservation of one seat on one
// flight. Flight display fields are denormalized so the cart view renders
// without re-fetching the flight.
type CartItem struct {
	FlightID      string  `json:"flightId"`
	SeatID        string  `json:"seatId"`
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
}

// CartView is the cart summary returned to the UI layer
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// AddToCartRequest confirms the tentative seat selection for a flight
type AddToCartRequest struct {
	FlightID string `json:"flightId"`
}

// CheckoutResult is returned when a checkout completes
type CheckoutResult struct {
	BookingID        string     `json:"bookingId"`
	ConfirmationCode string     `json:"confirmationCode"`
	Items            []CartItem `json:"items"`
	Total            float64    `json:"total"`
}

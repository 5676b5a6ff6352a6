package cart

import "github.com/skyfare/skyfare/internal/models"

// Store is the authoritative ordered list of reserved seats for the current
// session. Mutations do no I/O; the caller mirrors the state after each
// successful mutation.
type Store struct {
	items []models.CartItem
}

// NewStore creates a cart preloaded with items, usually the mirror's last
// snapshot.
func NewStore(items []models.CartItem) *Store {
	s := &Store{}
	s.items = append(s.items, items...)
	return s
}

// Add appends the item unconditionally. Duplicate prevention is the seat
// selection layer's responsibility.
func (s *Store) Add(item models.CartItem) {
	s.items = append(s.items, item)
}

// Remove deletes the first item matching the (flightId, seatId) composite
// key and reports whether anything was removed. A miss is a no-op.
func (s *Store) Remove(flightID, seatID string) bool {
	for i, item := range s.items {
		if item.FlightID == flightID && item.SeatID == seatID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Contains reports whether a seat on a flight is already reserved.
func (s *Store) Contains(flightID, seatID string) bool {
	for _, item := range s.items {
		if item.FlightID == flightID && item.SeatID == seatID {
			return true
		}
	}
	return false
}

// Items returns a copy of the cart in insertion order.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is derived on every read, never cached.
func (s *Store) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Price
	}
	return total
}

// Count returns the number of reserved seats, used for the header badge.
func (s *Store) Count() int {
	return len(s.items)
}

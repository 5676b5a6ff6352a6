package seatmap

// Mode controls how many seats may be tentatively selected at once.
type Mode int

const (
	// ModeSingle keeps at most one tentative seat; picking another replaces it.
	ModeSingle Mode = iota
	// ModeMulti accumulates a set of tentative seats.
	ModeMulti
)

// Config expresses the historical selection variants as configuration
// instead of parallel implementations.
type Config struct {
	Mode Mode
	// Toggle allows clicking a selected seat to deselect it.
	Toggle bool
}

// Selection tracks the tentative seat picks for one flight's detail view.
// It is discarded, never persisted, when the view changes.
type Selection struct {
	flightID string
	cfg      Config
	seats    []string
	index    map[string]struct{}
}

// NewSelection creates an empty selection scoped to a flight.
func NewSelection(flightID string, cfg Config) *Selection {
	return &Selection{
		flightID: flightID,
		cfg:      cfg,
		index:    make(map[string]struct{}),
	}
}

// FlightID returns the flight this selection is scoped to.
func (s *Selection) FlightID() string {
	return s.flightID
}

// Toggle records a click on a free seat and reports whether the seat is
// selected afterwards. Clicks on occupied or in-cart seats must be filtered
// out by the caller before reaching here.
func (s *Selection) Toggle(seatID string) bool {
	if _, ok := s.index[seatID]; ok {
		if s.cfg.Toggle {
			s.remove(seatID)
			return false
		}
		return true
	}

	if s.cfg.Mode == ModeSingle {
		s.Clear()
	}
	s.seats = append(s.seats, seatID)
	s.index[seatID] = struct{}{}
	return true
}

func (s *Selection) remove(seatID string) {
	delete(s.index, seatID)
	for i, id := range s.seats {
		if id == seatID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return
		}
	}
}

// Has reports whether the seat is tentatively selected.
func (s *Selection) Has(seatID string) bool {
	_, ok := s.index[seatID]
	return ok
}

// SeatIDs returns the selected seats in pick order.
func (s *Selection) SeatIDs() []string {
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}

// Empty reports whether nothing is selected. Add-to-cart is a no-op while
// the selection is empty.
func (s *Selection) Empty() bool {
	return len(s.seats) == 0
}

// Clear discards every tentative pick.
func (s *Selection) Clear() {
	s.seats = s.seats[:0]
	s.index = make(map[string]struct{})
}

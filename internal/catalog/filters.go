package catalog

import (
	"sort"
	"strings"

	"github.com/skyfare/skyfare/internal/models"
)

// Sort keys accepted by Filters.SortBy.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortTimeAsc   = "time-asc"
	SortTimeDesc  = "time-desc"
)

// Filters narrows and orders a flight listing. The zero value passes every
// flight through in provider order.
type Filters struct {
	// Search matches case-insensitively against airline, origin and
	// destination.
	Search string
	// Airline is an exact airline match.
	Airline string
	// MinPrice and MaxPrice bound the fare; a zero MaxPrice means unbounded.
	MinPrice float64
	MaxPrice float64
	// SortBy is one of the Sort* keys; anything else keeps provider order.
	SortBy string
}

func (f Filters) matches(flight models.Flight) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(flight.Airline), q) &&
			!strings.Contains(strings.ToLower(flight.From), q) &&
			!strings.Contains(strings.ToLower(flight.To), q) {
			return false
		}
	}
	if f.Airline != "" && flight.Airline != f.Airline {
		return false
	}
	if flight.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && flight.Price > f.MaxPrice {
		return false
	}
	return true
}

// ApplyFilters returns the flights matching f, ordered by its sort key.
func ApplyFilters(flights []models.Flight, f Filters) []models.Flight {
	out := make([]models.Flight, 0, len(flights))
	for _, flight := range flights {
		if f.matches(flight) {
			out = append(out, flight)
		}
	}

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortTimeAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	case SortTimeDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[j].DepartureTime.Before(out[i].DepartureTime) })
	}
	return out
}

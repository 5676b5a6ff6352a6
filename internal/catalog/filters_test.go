package catalog

import (
	"testing"
	"time"

	"github.com/skyfare/skyfare/internal/models"
	"github.com/stretchr/testify/assert"
)

func filterFixtures() []models.Flight {
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	return []models.Flight{
		{ID: "FL001", Airline: "American Airlines", From: "New York (JFK)", To: "Los Angeles (LAX)", Price: 150, DepartureTime: base.Add(6 * time.Hour)},
		{ID: "FL002", Airline: "United", From: "Chicago (ORD)", To: "Miami (MIA)", Price: 200, DepartureTime: base},
		{ID: "FL003", Airline: "Delta", From: "San Francisco (SFO)", To: "Seattle (SEA)", Price: 120, DepartureTime: base.Add(3 * time.Hour)},
	}
}

func flightIDs(flights []models.Flight) []string {
	ids := make([]string, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestApplyFilters_Matching(t *testing.T) {
	tests := []struct {
		name     string
		filters  Filters
		expected []string
	}{
		{
			name:     "zero value passes everything in provider order",
			filters:  Filters{},
			expected: []string{"FL001", "FL002", "FL003"},
		},
		{
			name:     "search matches city case-insensitively",
			filters:  Filters{Search: "miami"},
			expected: []string{"FL002"},
		},
		{
			name:     "search matches airline",
			filters:  Filters{Search: "delta"},
			expected: []string{"FL003"},
		},
		{
			name:     "search miss yields empty listing",
			filters:  Filters{Search: "tokyo"},
			expected: []string{},
		},
		{
			name:     "airline is an exact match",
			filters:  Filters{Airline: "United"},
			expected: []string{"FL002"},
		},
		{
			name:     "price range is inclusive",
			filters:  Filters{MinPrice: 120, MaxPrice: 150},
			expected: []string{"FL001", "FL003"},
		},
		{
			name:     "zero max price means unbounded",
			filters:  Filters{MinPrice: 160},
			expected: []string{"FL002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(filterFixtures(), tt.filters)
			assert.Equal(t, tt.expected, flightIDs(got))
		})
	}
}

func TestApplyFilters_Sorting(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		expected []string
	}{
		{name: "price ascending", sortBy: SortPriceAsc, expected: []string{"FL003", "FL001", "FL002"}},
		{name: "price descending", sortBy: SortPriceDesc, expected: []string{"FL002", "FL001", "FL003"}},
		{name: "departure ascending", sortBy: SortTimeAsc, expected: []string{"FL002", "FL003", "FL001"}},
		{name: "departure descending", sortBy: SortTimeDesc, expected: []string{"FL001", "FL003", "FL002"}},
		{name: "unknown key keeps provider order", sortBy: "alphabetical", expected: []string{"FL001", "FL002", "FL003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(filterFixtures(), Filters{SortBy: tt.sortBy})
			assert.Equal(t, tt.expected, flightIDs(got))
		})
	}
}

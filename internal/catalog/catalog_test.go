package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skyfare/skyfare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalog_ListPreservesOrder(t *testing.T) {
	flights := []models.Flight{
		{ID: "FL2", Airline: "B"},
		{ID: "FL1", Airline: "A"},
		{ID: "FL3", Airline: "C"},
	}
	c := NewMemoryCatalog(flights)

	got, err := c.ListFlights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, flights, got)
}

func TestMemoryCatalog_GetFlight(t *testing.T) {
	c := NewMemoryCatalog([]models.Flight{{ID: "FL1", Airline: "A", Price: 99}})

	flight, err := c.GetFlight(context.Background(), "FL1")
	require.NoError(t, err)
	assert.Equal(t, "A", flight.Airline)

	_, err = c.GetFlight(context.Background(), "FL404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSampleCatalog_SeedsFlights(t *testing.T) {
	c := NewSampleCatalog()

	flights, err := c.ListFlights(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	for _, f := range flights {
		assert.NotEmpty(t, f.ID)
		assert.Positive(t, f.TotalSeats)
		assert.GreaterOrEqual(t, f.RemainingSeats, 0)
		assert.LessOrEqual(t, f.RemainingSeats, f.TotalSeats)
	}
}

func TestHTTPCatalog_ListFlights(t *testing.T) {
	departure := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/flights", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"FL1","airline":"Test Air","from":"AAA","to":"BBB",` +
			`"departureTime":"` + departure.Format(time.RFC3339) + `",` +
			`"arrivalTime":"` + departure.Add(2*time.Hour).Format(time.RFC3339) + `",` +
			`"price":150,"totalSeats":180,"remainingSeats":150}]`))
	}))
	defer srv.Close()

	c := NewHTTPCatalog(srv.URL)
	flights, err := c.ListFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "FL1", flights[0].ID)
	assert.Equal(t, 180, flights[0].TotalSeats)
	assert.True(t, departure.Equal(flights[0].DepartureTime))
}

func TestHTTPCatalog_GetFlightNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewHTTPCatalog(srv.URL)
	_, err := c.GetFlight(context.Background(), "FL404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPCatalog_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPCatalog(srv.URL)
	_, err := c.ListFlights(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

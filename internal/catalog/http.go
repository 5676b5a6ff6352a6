package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/skyfare/skyfare/internal/models"
)

// HTTPCatalog fetches flights from a remote JSON endpoint exposing
// GET {base}/flights and GET {base}/flights/{id}.
type HTTPCatalog struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCatalog creates a provider against the given base URL.
func NewHTTPCatalog(baseURL string) *HTTPCatalog {
	return &HTTPCatalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPCatalog) ListFlights(ctx context.Context) ([]models.Flight, error) {
	var flights []models.Flight
	if err := c.getJSON(ctx, c.baseURL+"/flights", &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *HTTPCatalog) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	if err := c.getJSON(ctx, c.baseURL+"/flights/"+id, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (c *HTTPCatalog) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

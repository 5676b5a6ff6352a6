package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/skyfare/skyfare/internal/catalog"
	"github.com/skyfare/skyfare/internal/models"
	"github.com/skyfare/skyfare/internal/service"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	bookingService service.BookingService
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService service.BookingService) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// GetFlights handles GET /api/flights. The listing is narrowed by optional
// search, airline, minPrice, maxPrice and sort query parameters.
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.bookingService.GetFlights(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to load flights")
		return
	}
	respondJSON(w, http.StatusOK, catalog.ApplyFilters(flights, flightFilters(r)))
}

func flightFilters(r *http.Request) catalog.Filters {
	q := r.URL.Query()
	f := catalog.Filters{
		Search:  q.Get("search"),
		Airline: q.Get("airline"),
		SortBy:  q.Get("sort"),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		f.MaxPrice = v
	}
	return f
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	flight, err := h.bookingService.GetFlight(r.Context(), flightID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		respondError(w, http.StatusBadGateway, "Failed to load flight")
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetSeatMap handles GET /api/flights/{id}/seats
func (h *Handler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]
	seats, err := h.bookingService.GetSeatMap(r.Context(), flightID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		respondError(w, http.StatusBadGateway, "Failed to load seat map")
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// ToggleSeat handles POST /api/flights/{id}/seats/{seatId}/toggle
func (h *Handler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	flightID := vars["id"]
	seatID := vars["seatId"]

	seats, err := h.bookingService.ToggleSeat(r.Context(), flightID, seatID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, "Flight not found")
		case errors.Is(err, service.ErrSeatNotFound):
			respondError(w, http.StatusNotFound, "Seat not found")
		default:
			respondError(w, http.StatusBadGateway, "Failed to update seat")
		}
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// AddToCart handles POST /api/cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}

	view, err := h.bookingService.AddSelectionToCart(r.Context(), req.FlightID)
	if err != nil {
		if errors.Is(err, service.ErrNoSelection) {
			respondError(w, http.StatusBadRequest, "No seats selected")
			return
		}
		respondError(w, http.StatusBadGateway, "Failed to add to cart")
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// GetCart handles GET /api/cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.GetCart(r.Context()))
}

// RemoveCartItem handles DELETE /api/cart/items/{flightId}/{seatId}
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	view := h.bookingService.RemoveCartItem(r.Context(), vars["flightId"], vars["seatId"])
	respondJSON(w, http.StatusOK, view)
}

// ClearCart handles DELETE /api/cart
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.ClearCart(r.Context()))
}

// Checkout handles POST /api/checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingService.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			respondError(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		respondError(w, http.StatusBadGateway, "Checkout failed")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

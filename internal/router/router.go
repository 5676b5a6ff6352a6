package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/skyfare/skyfare/internal/handlers"
	"github.com/skyfare/skyfare/internal/ws"
)

// SetupRouter creates and configures the HTTP router. hub may be nil to
// disable the seat update stream.
func SetupRouter(h *handlers.Handler, hub *ws.Hub) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights and seat maps
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seats", h.GetSeatMap).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/seats/{seatId}/toggle", h.ToggleSeat).Methods(http.MethodPost, http.MethodOptions)

	// Cart
	api.HandleFunc("/cart", h.AddToCart).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items/{flightId}/{seatId}", h.RemoveCartItem).Methods(http.MethodDelete, http.MethodOptions)

	// Checkout
	api.HandleFunc("/checkout", h.Checkout).Methods(http.MethodPost, http.MethodOptions)

	// WebSocket for live seat updates
	if hub != nil {
		api.HandleFunc("/flights/{id}/ws", hub.ServeWS)
	}

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/skyfare/skyfare/internal/models"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSeatsUpdated MessageType = "seats_updated"
	MessageTypeCartCleared  MessageType = "cart_cleared"
)

// SeatUpdate represents a seat status change
type SeatUpdate struct {
	SeatID string            `json:"seatId"`
	Status models.SeatStatus `json:"status"`
}

// Message represents a WebSocket message
type Message struct {
	Type      MessageType  `json:"type"`
	FlightID  string       `json:"flightId"`
	Seats     []SeatUpdate `json:"seats,omitempty"`
	Timestamp int64        `json:"timestamp"`
}

// Hub manages WebSocket connections per flight
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightID] == nil {
				h.clients[client.flightID] = make(map[*Client]bool)
			}
			h.clients[client.flightID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.flightID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("ws: failed to marshal message: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.FlightID]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.FlightID], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastSeatUpdate notifies clients watching a flight that seat statuses
// changed. Occupancy stays non-authoritative; this only refreshes open views.
func (h *Hub) BroadcastSeatUpdate(flightID string, seats []SeatUpdate) {
	h.broadcast <- &Message{
		Type:      MessageTypeSeatsUpdated,
		FlightID:  flightID,
		Seats:     seats,
		Timestamp: time.Now().UnixMilli(),
	}
}

// BroadcastCartCleared notifies clients watching a flight that every
// reservation was released.
func (h *Hub) BroadcastCartCleared(flightID string) {
	h.broadcast <- &Message{
		Type:      MessageTypeCartCleared,
		FlightID:  flightID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ClientCount returns the number of clients watching a flight
func (h *Hub) ClientCount(flightID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightID])
}

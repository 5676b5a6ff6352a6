package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skyfare/skyfare/internal/cart"
	"github.com/skyfare/skyfare/internal/catalog"
	"github.com/skyfare/skyfare/internal/models"
	"github.com/skyfare/skyfare/internal/seatmap"
	"github.com/skyfare/skyfare/internal/storage"
	"github.com/skyfare/skyfare/internal/ws"
	"go.temporal.io/sdk/client"
)

var (
	// ErrSeatNotFound is returned when a seat id is not on the current seat map
	ErrSeatNotFound = errors.New("seat not found")
	// ErrNoSelection guards add-to-cart against an empty tentative selection
	ErrNoSelection = errors.New("no seats selected")
	// ErrCartEmpty guards checkout against an empty cart
	ErrCartEmpty = errors.New("cart is empty")
)

// BookingService is the presentation interface the HTTP layer talks to
type BookingService interface {
	GetFlights(ctx context.Context) ([]models.Flight, error)
	GetFlight(ctx context.Context, flightID string) (*models.Flight, error)
	GetSeatMap(ctx context.Context, flightID string) (*models.SeatMap, error)
	ToggleSeat(ctx context.Context, flightID, seatID string) (*models.SeatMap, error)
	AddSelectionToCart(ctx context.Context, flightID string) (*models.CartView, error)
	GetCart(ctx context.Context) *models.CartView
	RemoveCartItem(ctx context.Context, flightID, seatID string) *models.CartView
	ClearCart(ctx context.Context) *models.CartView
	Checkout(ctx context.Context) (*models.CheckoutResult, error)
}

// Config tunes the service
type Config struct {
	// Selection picks the seat selection variant (single vs multi, toggle)
	Selection seatmap.Config
	// Rand is the seat occupancy source; nil gets a time-seeded one.
	// Inject a fixed seed to replay layouts in tests.
	Rand *rand.Rand
}

// seatView is the seat map for the currently displayed flight. The tentative
// selection lives and dies with it; loading another flight's map discards it.
type seatView struct {
	flight       *models.Flight
	order        []string
	rows         map[string]models.Seat
	baseOccupied map[string]bool
	selection    *seatmap.Selection
}

type bookingServiceImpl struct {
	mu sync.Mutex

	provider catalog.Provider
	slots    storage.SlotStore
	cart     *cart.Store
	mirror   *cart.Mirror
	hub      *ws.Hub
	temporal client.Client
	rng      *rand.Rand
	selCfg   seatmap.Config

	view *seatView
}

// NewBookingService creates the service and rehydrates the cart from the
// mirror's last snapshot. hub and temporalClient may be nil; seat updates
// are then not broadcast and checkout runs inline.
func NewBookingService(provider catalog.Provider, slots storage.SlotStore, hub *ws.Hub, temporalClient client.Client, cfg Config) BookingService {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	mirror := cart.NewMirror(slots)
	store := cart.NewStore(mirror.Load(context.Background()))

	return &bookingServiceImpl{
		provider: provider,
		slots:    slots,
		cart:     store,
		mirror:   mirror,
		hub:      hub,
		temporal: temporalClient,
		rng:      rng,
		selCfg:   cfg.Selection,
	}
}

func (s *bookingServiceImpl) GetFlights(ctx context.Context) ([]models.Flight, error) {
	return s.provider.ListFlights(ctx)
}

func (s *bookingServiceImpl) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	return s.provider.GetFlight(ctx, flightID)
}

// GetSeatMap regenerates the flight's layout and replaces the current view.
// Occupancy is synthesized fresh on every call; only the cart overlay is
// stable across loads.
func (s *bookingServiceImpl) GetSeatMap(ctx context.Context, flightID string) (*models.SeatMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadView(ctx, flightID); err != nil {
		return nil, err
	}
	return s.renderSeatMap(), nil
}

func (s *bookingServiceImpl) ToggleSeat(ctx context.Context, flightID, seatID string) (*models.SeatMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil || s.view.flight.ID != flightID {
		if err := s.loadView(ctx, flightID); err != nil {
			return nil, err
		}
	}

	if _, ok := s.view.rows[seatID]; !ok {
		return nil, ErrSeatNotFound
	}

	switch {
	case s.cart.Contains(flightID, seatID):
		// Cross-component transition: the seat's reservation is dropped and
		// the seat reverts to free.
		s.cart.Remove(flightID, seatID)
		delete(s.view.baseOccupied, seatID)
		s.saveMirror(ctx)
		s.broadcastSeat(flightID, seatID, models.SeatStatusFree)

	case s.view.baseOccupied[seatID]:
		// Occupied seats ignore clicks.

	default:
		s.view.selection.Toggle(seatID)
	}

	return s.renderSeatMap(), nil
}

func (s *bookingServiceImpl) AddSelectionToCart(ctx context.Context, flightID string) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil || s.view.flight.ID != flightID || s.view.selection.Empty() {
		return nil, ErrNoSelection
	}

	flight := s.view.flight
	for _, seatID := range s.view.selection.SeatIDs() {
		s.cart.Add(models.CartItem{
			FlightID:      flight.ID,
			SeatID:        seatID,
			Price:         flight.Price,
			Airline:       flight.Airline,
			From:          flight.From,
			To:            flight.To,
			DepartureTime: flight.DepartureTime.Format(time.RFC3339),
			ArrivalTime:   flight.ArrivalTime.Format(time.RFC3339),
		})
		s.broadcastSeat(flight.ID, seatID, models.SeatStatusOccupied)
	}

	s.view.selection.Clear()
	s.saveMirror(ctx)
	return s.cartView(), nil
}

func (s *bookingServiceImpl) GetCart(ctx context.Context) *models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

func (s *bookingServiceImpl) RemoveCartItem(ctx context.Context, flightID, seatID string) *models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Remove(flightID, seatID) {
		if s.view != nil && s.view.flight.ID == flightID {
			delete(s.view.baseOccupied, seatID)
		}
		s.saveMirror(ctx)
		s.broadcastSeat(flightID, seatID, models.SeatStatusFree)
	}
	return s.cartView()
}

func (s *bookingServiceImpl) ClearCart(ctx context.Context) *models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearCartLocked(ctx)
	return s.cartView()
}

func (s *bookingServiceImpl) Checkout(ctx context.Context) (*models.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Count() == 0 {
		return nil, ErrCartEmpty
	}

	result, err := s.runCheckout(ctx, s.cart.Items(), s.cart.Total())
	if err != nil {
		return nil, err
	}

	s.clearCartLocked(ctx)
	return result, nil
}

// --- internals, all called with s.mu held ---

func (s *bookingServiceImpl) loadView(ctx context.Context, flightID string) error {
	flight, err := s.provider.GetFlight(ctx, flightID)
	if err != nil {
		return err
	}

	seats, err := seatmap.Generate(flight, s.rng)
	if err != nil {
		return err
	}

	view := &seatView{
		flight:       flight,
		rows:         make(map[string]models.Seat, len(seats)),
		baseOccupied: make(map[string]bool),
		selection:    seatmap.NewSelection(flightID, s.selCfg),
	}
	for _, seat := range seats {
		view.order = append(view.order, seat.ID)
		view.rows[seat.ID] = seat
		if seat.Status == models.SeatStatusOccupied && !s.cart.Contains(flightID, seat.ID) {
			view.baseOccupied[seat.ID] = true
		}
	}

	s.view = view
	return nil
}

// renderSeatMap derives per-seat statuses. Selected means the viewer's own
// tentative pick; confirmed reservations render occupied like any other
// taken seat.
func (s *bookingServiceImpl) renderSeatMap() *models.SeatMap {
	v := s.view
	out := &models.SeatMap{FlightID: v.flight.ID, Seats: make([]models.Seat, 0, len(v.order))}
	for _, id := range v.order {
		seat := v.rows[id]
		switch {
		case s.cart.Contains(v.flight.ID, id):
			seat.Status = models.SeatStatusOccupied
		case v.selection.Has(id):
			seat.Status = models.SeatStatusSelected
		case v.baseOccupied[id]:
			seat.Status = models.SeatStatusOccupied
		default:
			seat.Status = models.SeatStatusFree
		}
		out.Seats = append(out.Seats, seat)
	}
	return out
}

func (s *bookingServiceImpl) cartView() *models.CartView {
	return &models.CartView{
		Items: s.cart.Items(),
		Total: s.cart.Total(),
		Count: s.cart.Count(),
	}
}

func (s *bookingServiceImpl) clearCartLocked(ctx context.Context) {
	flights := make(map[string]bool)
	for _, item := range s.cart.Items() {
		flights[item.FlightID] = true
	}

	s.cart.Clear()
	s.saveMirror(ctx)

	if s.hub != nil {
		for flightID := range flights {
			s.hub.BroadcastCartCleared(flightID)
		}
	}
}

func (s *bookingServiceImpl) saveMirror(ctx context.Context) {
	if err := s.mirror.Save(ctx, s.cart.Items()); err != nil {
		// Best-effort: a failed mirror write is not surfaced or retried.
		log.Printf("cart mirror write failed: %v", err)
	}
}

func (s *bookingServiceImpl) broadcastSeat(flightID, seatID string, status models.SeatStatus) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastSeatUpdate(flightID, []ws.SeatUpdate{{SeatID: seatID, Status: status}})
}

func (s *bookingServiceImpl) runCheckout(ctx context.Context, items []models.CartItem, total float64) (*models.CheckoutResult, error) {
	bookingID := uuid.New().String()[:8]

	if s.temporal != nil {
		return s.runCheckoutWorkflow(ctx, bookingID, items, total)
	}

	// Inline stub when no Temporal client is configured: record the receipt
	// directly and confirm immediately.
	receipt, err := recordReceiptInline(ctx, s.slots, bookingID, items, total)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

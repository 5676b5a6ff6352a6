package mocks

import (
	"context"

	"github.com/skyfare/skyfare/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockBookingService is a mock implementation of service.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetFlights(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockBookingService) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockBookingService) GetSeatMap(ctx context.Context, flightID string) (*models.SeatMap, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatMap), args.Error(1)
}

func (m *MockBookingService) ToggleSeat(ctx context.Context, flightID, seatID string) (*models.SeatMap, error) {
	args := m.Called(ctx, flightID, seatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatMap), args.Error(1)
}

func (m *MockBookingService) AddSelectionToCart(ctx context.Context, flightID string) (*models.CartView, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartView), args.Error(1)
}

func (m *MockBookingService) GetCart(ctx context.Context) *models.CartView {
	args := m.Called(ctx)
	return args.Get(0).(*models.CartView)
}

func (m *MockBookingService) RemoveCartItem(ctx context.Context, flightID, seatID string) *models.CartView {
	args := m.Called(ctx, flightID, seatID)
	return args.Get(0).(*models.CartView)
}

func (m *MockBookingService) ClearCart(ctx context.Context) *models.CartView {
	args := m.Called(ctx)
	return args.Get(0).(*models.CartView)
}

func (m *MockBookingService) Checkout(ctx context.Context) (*models.CheckoutResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

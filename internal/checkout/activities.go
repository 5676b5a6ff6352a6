package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/skyfare/skyfare/internal/models"
	"github.com/skyfare/skyfare/internal/storage"
	"go.temporal.io/sdk/activity"
)

// Activities holds the checkout activity implementations
type Activities struct {
	store storage.SlotStore
}

// NewActivities creates activities over the given slot store
func NewActivities(store storage.SlotStore) *Activities {
	return &Activities{store: store}
}

// RecordBookingOutput is the result of recording a booking receipt
type RecordBookingOutput struct {
	ConfirmationCode string `json:"confirmationCode"`
}

// NotifyConfirmationInput identifies the booking to confirm
type NotifyConfirmationInput struct {
	BookingID        string `json:"bookingId"`
	ConfirmationCode string `json:"confirmationCode"`
}

// ReceiptSlotKey returns the slot a booking receipt is stored under
func ReceiptSlotKey(bookingID string) string {
	return "booking:" + bookingID
}

// NewConfirmationCode generates a short human-readable confirmation code
func NewConfirmationCode() string {
	return uuid.New().String()[:8]
}

// RecordBooking persists the booking receipt under its own slot
func (a *Activities) RecordBooking(ctx context.Context, input Input) (*RecordBookingOutput, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Recording booking", "bookingId", input.BookingID)

	receipt := models.CheckoutResult{
		BookingID:        input.BookingID,
		ConfirmationCode: NewConfirmationCode(),
		Items:            input.Items,
		Total:            input.Total,
	}

	data, err := json.Marshal(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize receipt: %w", err)
	}

	if err := a.store.WriteSlot(ctx, ReceiptSlotKey(input.BookingID), string(data)); err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	return &RecordBookingOutput{ConfirmationCode: receipt.ConfirmationCode}, nil
}

// NotifyConfirmation is a stub; no real delivery happens.
func (a *Activities) NotifyConfirmation(ctx context.Context, input NotifyConfirmationInput) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Booking confirmed", "bookingId", input.BookingID, "code", input.ConfirmationCode)
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skyfare/skyfare/internal/checkout"
	"github.com/skyfare/skyfare/internal/models"
	"github.com/skyfare/skyfare/internal/storage"
	"go.temporal.io/sdk/client"
)

// runCheckoutWorkflow hands the cart snapshot to the checkout workflow and
// waits for its confirmation code.
func (s *bookingServiceImpl) runCheckoutWorkflow(ctx context.Context, bookingID string, items []models.CartItem, total float64) (*models.CheckoutResult, error) {
	workflowOptions := client.StartWorkflowOptions{
		ID:        "checkout-" + bookingID,
		TaskQueue: checkout.TaskQueue,
	}

	input := checkout.Input{
		BookingID: bookingID,
		Items:     items,
		Total:     total,
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, workflowOptions, "CheckoutWorkflow", input)
	if err != nil {
		return nil, fmt.Errorf("failed to start checkout workflow: %w", err)
	}

	var result checkout.Result
	if err := run.Get(ctx, &result); err != nil {
		return nil, fmt.Errorf("checkout workflow failed: %w", err)
	}

	return &models.CheckoutResult{
		BookingID:        bookingID,
		ConfirmationCode: result.ConfirmationCode,
		Items:            items,
		Total:            total,
	}, nil
}

// recordReceiptInline mirrors the workflow's RecordBooking activity for
// standalone deployments.
func recordReceiptInline(ctx context.Context, slots storage.SlotStore, bookingID string, items []models.CartItem, total float64) (*models.CheckoutResult, error) {
	receipt := models.CheckoutResult{
		BookingID:        bookingID,
		ConfirmationCode: checkout.NewConfirmationCode(),
		Items:            items,
		Total:            total,
	}

	data, err := json.Marshal(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize receipt: %w", err)
	}
	if err := slots.WriteSlot(ctx, checkout.ReceiptSlotKey(bookingID), string(data)); err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	return &receipt, nil
}

package checkout

import (
	"time"

	"github.com/skyfare/skyfare/internal/models"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// TaskQueue is the queue the checkout worker listens on
	TaskQueue = "skyfare-checkout-queue"
)

// Input carries the cart snapshot into the checkout workflow. The cart
// itself is not touched here; the caller clears it after a successful run.
type Input struct {
	BookingID string            `json:"bookingId"`
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
}

// Result is the outcome of a checkout run
type Result struct {
	ConfirmationCode string `json:"confirmationCode"`
}

// Workflow records the booking receipt and sends the (stubbed)
// confirmation. There is no payment step; checkout always succeeds once the
// receipt is durable.
func Workflow(ctx workflow.Context, input Input) (*Result, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Checkout started", "bookingId", input.BookingID, "items", len(input.Items))

	activityOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOpts)

	var recorded RecordBookingOutput
	err := workflow.ExecuteActivity(ctx, "RecordBooking", input).Get(ctx, &recorded)
	if err != nil {
		logger.Error("Failed to record booking", "error", err)
		return nil, err
	}

	err = workflow.ExecuteActivity(ctx, "NotifyConfirmation", NotifyConfirmationInput{
		BookingID:        input.BookingID,
		ConfirmationCode: recorded.ConfirmationCode,
	}).Get(ctx, nil)
	if err != nil {
		// The receipt is already durable; a lost notification is not fatal.
		logger.Error("Failed to send confirmation", "error", err)
	}

	logger.Info("Checkout completed", "bookingId", input.BookingID, "code", recorded.ConfirmationCode)
	return &Result{ConfirmationCode: recorded.ConfirmationCode}, nil
}

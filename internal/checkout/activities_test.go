package checkout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/skyfare/skyfare/internal/models"
	"github.com/skyfare/skyfare/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
)

func TestRecordBooking_StoresReceipt(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()

	store := storage.NewMemStore()
	acts := NewActivities(store)
	env.RegisterActivity(acts.RecordBooking)

	input := Input{
		BookingID: "abc12345",
		Items:     []models.CartItem{{FlightID: "FL001", SeatID: "1A", Price: 150}},
		Total:     150,
	}

	val, err := env.ExecuteActivity(acts.RecordBooking, input)
	require.NoError(t, err)

	var out RecordBookingOutput
	require.NoError(t, val.Get(&out))
	assert.Len(t, out.ConfirmationCode, 8)

	raw, err := store.ReadSlot(context.Background(), ReceiptSlotKey("abc12345"))
	require.NoError(t, err)

	var receipt models.CheckoutResult
	require.NoError(t, json.Unmarshal([]byte(raw), &receipt))
	assert.Equal(t, "abc12345", receipt.BookingID)
	assert.Equal(t, out.ConfirmationCode, receipt.ConfirmationCode)
	assert.Equal(t, 150.00, receipt.Total)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "1A", receipt.Items[0].SeatID)
}

func TestNewConfirmationCode_ShortAndUnique(t *testing.T) {
	first := NewConfirmationCode()
	second := NewConfirmationCode()

	assert.Len(t, first, 8)
	assert.NotEqual(t, first, second)
}

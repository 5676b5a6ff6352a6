package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skyfare/skyfare/internal/models"
	"github.com/skyfare/skyfare/internal/storage"
)

// SlotKey is the fixed slot the cart snapshot lives under
const SlotKey = "cart"

// Mirror persists the full cart snapshot to a slot store. It is a mirror,
// not a log: every save rewrites the whole sequence.
type Mirror struct {
	store storage.SlotStore
}

// NewMirror creates a mirror over the given slot store.
func NewMirror(store storage.SlotStore) *Mirror {
	return &Mirror{store: store}
}

// Save serializes the items and writes them under the cart slot.
func (m *Mirror) Save(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := m.store.WriteSlot(ctx, SlotKey, string(data)); err != nil {
		return fmt.Errorf("failed to mirror cart: %w", err)
	}
	return nil
}

// Load deserializes the last snapshot. An absent or malformed slot yields an
// empty cart rather than an error so startup never fails on stale state.
func (m *Mirror) Load(ctx context.Context) []models.CartItem {
	value, err := m.store.ReadSlot(ctx, SlotKey)
	if err != nil {
		// Unreadable state is treated like missing state.
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil
	}
	return items
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ReadMissingSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.ReadSlot(context.Background(), "cart")
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestFileStore_WriteRead(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.WriteSlot(ctx, "cart", `[{"flightId":"FL1"}]`))

	value, err := store.ReadSlot(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"flightId":"FL1"}]`, value)
}

func TestFileStore_OverwriteKeepsLastValue(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.WriteSlot(ctx, "cart", "first"))
	require.NoError(t, store.WriteSlot(ctx, "cart", "second"))

	value, err := store.ReadSlot(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestFileStore_NamespacedKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.WriteSlot(ctx, "booking:abc123", "receipt"))

	value, err := store.ReadSlot(ctx, "booking:abc123")
	require.NoError(t, err)
	assert.Equal(t, "receipt", value)
}

func TestMemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	_, err := store.ReadSlot(ctx, "cart")
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, store.WriteSlot(ctx, "cart", "value"))

	value, err := store.ReadSlot(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotEmpty is returned when a slot has never been written
var ErrSlotEmpty = errors.New("slot empty")

// SlotStore is a durable key-value slot. Writes are synchronous and
// best-effort: there is no transactionality and callers do not retry a
// failed write.
type SlotStore interface {
	ReadSlot(ctx context.Context, key string) (string, error)
	WriteSlot(ctx context.Context, key, value string) error
}

// MemStore is an in-memory SlotStore used in tests and as a fallback.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string]string)}
}

func (m *MemStore) ReadSlot(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	if !ok {
		return "", ErrSlotEmpty
	}
	return value, nil
}

func (m *MemStore) WriteSlot(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

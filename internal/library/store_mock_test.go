package library

import (
	"context"

	"github.com/emiliopalmerini/swatches/internal/adapters/memory"
)

// MockStore is a mock implementation of ports.KeyValueStore for testing.
// Unset funcs fall through to an in-memory store.
type MockStore struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error

	mem *memory.Store
}

func newMockStore() *MockStore {
	return &MockStore{mem: memory.NewStore()}
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return m.mem.Get(ctx, key)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	return m.mem.Set(ctx, key, value)
}

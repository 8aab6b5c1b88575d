package studio

import (
	"context"
	"errors"

	"github.com/emiliopalmerini/swatches/internal/adapters/memory"
	"github.com/emiliopalmerini/swatches/internal/library"
	"github.com/emiliopalmerini/swatches/internal/ports"
)

func newGateway(store ports.KeyValueStore) *library.Gateway {
	return library.NewGateway(store, "", nil)
}

func newBrokenLibraryStore() *memory.Store {
	store := memory.NewStore()
	_ = store.Set(context.Background(), library.DefaultKey, "{not json")
	return store
}

// failingStore accepts reads and rejects every write.
type failingStore struct {
	*memory.Store
}

func (f failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("quota exceeded")
}

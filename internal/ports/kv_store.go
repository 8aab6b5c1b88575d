package ports

import "context"

// KeyValueStore is a durable string store with get/set semantics.
type KeyValueStore interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

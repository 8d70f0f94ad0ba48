package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Keys of the two persisted collections. Each holds a JSON array that is
// replaced as a whole on every write.
const (
	KeySavedQuotes  = "SavedQuotes"
	KeyDefaultItems = "DefaultItems"
)

// KV is the flat key-value surface the quote service persists through.
// Get reports ok=false, with a nil error, when the key has never been set.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

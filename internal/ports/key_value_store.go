package ports

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore persists small string records under fixed keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Package chain combines two key/value stores: writes and reads go to the
// primary first and use the fallback only when the primary cannot serve.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/repara-cli/internal/adapters/storage/file"
	passstore "github.com/bnema/repara-cli/internal/adapters/storage/pass"
	"github.com/bnema/repara-cli/internal/ports"
)

type Store struct {
	primary  ports.KeyValueStore
	fallback ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary store is nil")
	errNilFallbackStore = errors.New("fallback store is nil")
)

func NewStore(primary ports.KeyValueStore, fallback ports.KeyValueStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassFirstWithFileFallback keeps records in pass and under fileRoot
// when pass is missing or fails.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passstore.DefaultPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary put failed: %w; fallback put failed: %w", err, fallbackErr)
}

// Get reads the primary and then the fallback. A record written to the
// fallback while the primary was down is still found once it is back.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, ports.ErrKeyNotFound) && errors.Is(fallbackErr, ports.ErrKeyNotFound) {
		return "", fmt.Errorf("record %q: %w", key, ports.ErrKeyNotFound)
	}

	return "", fmt.Errorf("primary get failed: %w; fallback get failed: %w", err, fallbackErr)
}

// Delete removes the key from both stores so a stale fallback copy cannot
// resurface.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	if err != nil && fallbackErr != nil {
		return fmt.Errorf("primary delete failed: %w; fallback delete failed: %w", err, fallbackErr)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

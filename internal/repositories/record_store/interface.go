package record_store

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/deuce/internal/repositories/record_store Store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing is stored under the key
var ErrNotFound = errors.New("record not found")

// Store is a key-value store holding opaque serialized records
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error
}

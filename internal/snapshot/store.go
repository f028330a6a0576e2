package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no snapshot has been persisted yet
var ErrNotFound = errors.New("snapshot: not found")

// Store is the key-value persistence behind the adapter. Implementations
// exist for Redis (primary) and Postgres (fallback).
type Store interface {
	LoadState(ctx context.Context) ([]byte, error)
	SaveState(ctx context.Context, data []byte) error
	LoadRemember(ctx context.Context) (bool, error)
	SaveRemember(ctx context.Context, remember bool) error
	Ping(ctx context.Context) error
	Name() string
}

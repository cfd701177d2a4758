package service

import "context"

// IdempotencyStore remembers client supplied request keys for a bounded time.
type IdempotencyStore interface {
	// Reserve claims key. It reports false when the key was already claimed.
	Reserve(ctx context.Context, key string) (bool, error)

	// Release forgets key so the request can be retried.
	Release(ctx context.Context, key string) error
}

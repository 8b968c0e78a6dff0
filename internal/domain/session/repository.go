package session

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// Validate returns the user id and expiry for a live session, or an
	// error for a missing or expired one.
	Validate(ctx context.Context, tokenHash string) (string, time.Time, error)
	Delete(ctx context.Context, tokenHash string) error
}

// Cache is a TTL'd token-hash -> user-id lookup placed in front of the
// repository. Lookups that miss fall through to the repository.
type Cache interface {
	Get(ctx context.Context, tokenHash string) (string, bool, error)
	Set(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	Del(ctx context.Context, tokenHash string) error
}

// Package cache implements Redis-backed adapters from the application layer.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// denylistKeyPrefix namespaces revoked refresh tokens in Redis.
const denylistKeyPrefix = "auth:revoked:"

// tokenDenylist implements the adapter.TokenDenylist interface on Redis.
type tokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a new Redis-backed token denylist.
func NewTokenDenylist(client *redis.Client) adapter.TokenDenylist {
	return &tokenDenylist{
		client: client,
	}
}

// Revoke marks a token as revoked. The TTL bounds the entry's lifetime to the
// token's own expiry, so Redis cleans up after itself.
func (d *tokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+token, "1", ttl).Err()
}

// IsRevoked reports whether a token has been revoked.
func (d *tokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := d.client.Get(ctx, denylistKeyPrefix+token).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

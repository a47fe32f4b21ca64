package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mini, client
}

func TestRevokeAndCheck(t *testing.T) {
	_, client := newTestRedis(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "some-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked {
		t.Error("expected unknown token to not be revoked")
	}

	if err := denylist.Revoke(ctx, "some-token", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revoked, err = denylist.IsRevoked(ctx, "some-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revoked {
		t.Error("expected token to be revoked")
	}
}

func TestRevocationExpiresWithToken(t *testing.T) {
	mini, client := newTestRedis(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "short-lived", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Once the token itself would have expired the entry is useless.
	mini.FastForward(2 * time.Minute)

	revoked, err := denylist.IsRevoked(ctx, "short-lived")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked {
		t.Error("expected revocation entry to expire")
	}
}

func TestRevokeWithNonPositiveTTLIsNoop(t *testing.T) {
	_, client := newTestRedis(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "expired-token", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	revoked, err := denylist.IsRevoked(ctx, "expired-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revoked {
		t.Error("expected no denylist entry for an already expired token")
	}
}

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func TestLimiter_AllowUpToLimit(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	limiter := NewLimiter(store, zerolog.Nop())

	scope := Scope{Name: "login", Limit: 5, Window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, _, err := limiter.Allow(ctx, "10.0.0.1", scope)
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, name, err := limiter.Allow(ctx, "10.0.0.1", scope)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if ok {
		t.Fatalf("request over the limit should be rejected")
	}
	if name != "login" {
		t.Fatalf("exceeded scope = %q, want login", name)
	}

	// Other keys are unaffected.
	if ok, _, _ := limiter.Allow(ctx, "10.0.0.2", scope); !ok {
		t.Fatalf("different key must have its own counter")
	}
}

func TestLimiter_WindowRollover(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	limiter := NewLimiter(store, zerolog.Nop())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	scope := Scope{Name: "reads", Limit: 1, Window: time.Hour}
	ctx := context.Background()

	if ok, _, _ := limiter.Allow(ctx, "k", scope); !ok {
		t.Fatalf("first request rejected")
	}
	if ok, _, _ := limiter.Allow(ctx, "k", scope); ok {
		t.Fatalf("second request in window should be rejected")
	}

	limiter.now = func() time.Time { return base.Add(time.Hour) }
	if ok, _, _ := limiter.Allow(ctx, "k", scope); !ok {
		t.Fatalf("new window should reset the counter")
	}
}

func TestLimiter_MultipleScopes(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	limiter := NewLimiter(store, zerolog.Nop())

	hourly := Scope{Name: "hourly", Limit: 2, Window: time.Hour}
	daily := Scope{Name: "daily", Limit: 100, Window: 24 * time.Hour}
	ctx := context.Background()

	limiter.Allow(ctx, "k", hourly, daily)
	limiter.Allow(ctx, "k", hourly, daily)

	ok, name, _ := limiter.Allow(ctx, "k", hourly, daily)
	if ok || name != "hourly" {
		t.Fatalf("tightest scope should reject first, got ok=%v scope=%q", ok, name)
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestLimiter_FailsOpenOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{}, zerolog.Nop())

	ok, _, err := limiter.Allow(context.Background(), "k", Scope{Name: "global", Limit: 1, Window: time.Minute})
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !ok {
		t.Fatalf("store failure must not reject requests")
	}
}

func TestRedisStore_Incr(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Incr(ctx, "ratelimit:test:k", time.Minute)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if got != want {
			t.Fatalf("count = %d, want %d", got, want)
		}
	}

	if ttl := srv.TTL("ratelimit:test:k"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	srv.FastForward(2 * time.Minute)
	got, err := store.Incr(ctx, "ratelimit:test:k", time.Minute)
	if err != nil {
		t.Fatalf("incr after expiry: %v", err)
	}
	if got != 1 {
		t.Fatalf("expired key should restart at 1, got %d", got)
	}
}

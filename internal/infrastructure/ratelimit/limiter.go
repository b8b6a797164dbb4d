// Package ratelimit provides fixed-window request limiting with pluggable
// counter storage (Redis in production, in-memory for tests and single-node
// deployments).
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Scope names one limit bucket. Requests are counted per (scope, key) pair
// within a fixed window.
type Scope struct {
	Name   string
	Limit  int64
	Window time.Duration
}

// Store increments and reports the counter for a key within the current
// window. The first increment of a window starts its expiry.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Limiter checks scopes against a Store. Store failures fail open: a broken
// counter backend must not take the public site down.
type Limiter struct {
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewLimiter(store Store, log zerolog.Logger) *Limiter {
	return &Limiter{store: store, log: log, now: time.Now}
}

// Allow reports whether the request identified by key is within every given
// scope. When a scope is exceeded its name is returned for reporting.
func (l *Limiter) Allow(ctx context.Context, key string, scopes ...Scope) (bool, string, error) {
	for _, sc := range scopes {
		count, err := l.store.Incr(ctx, l.bucketKey(sc, key), sc.Window)
		if err != nil {
			l.log.Error().Err(err).Str("scope", sc.Name).Msg("rate limit store unavailable, allowing request")
			return true, "", nil
		}
		if count > sc.Limit {
			return false, sc.Name, nil
		}
	}
	return true, "", nil
}

// bucketKey pins the counter to the current fixed window so that a new
// window always starts from zero even if the previous key has not expired.
func (l *Limiter) bucketKey(sc Scope, key string) string {
	bucket := l.now().UnixNano() / int64(sc.Window)
	return fmt.Sprintf("ratelimit:%s:%s:%d", sc.Name, key, bucket)
}

package ratelimit

import (
	"context"
	"time"
)

// Store tracks request counts per client key over a fixed window. The
// orchestrator only ever talks to the Limiter, so a distributed deployment
// can swap in a shared store without touching the call contract.
type Store interface {
	// Hit records one request for key at time now and returns the number of
	// hits observed in the current window plus the instant the window resets.
	Hit(ctx context.Context, key string, now time.Time, window time.Duration) (hits int, resetAt time.Time, err error)
}

// Result reports a single rate-limit decision.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter applies a fixed-window policy on top of a Store. When the primary
// store errors (e.g. Redis unreachable) it falls back to an in-process
// memory store rather than failing the request.
type Limiter struct {
	store    Store
	fallback *MemoryStore
	limit    int
	window   time.Duration
	prefix   string
}

// NewLimiter builds a limiter over store. A nil store means memory-only.
func NewLimiter(store Store, limit int, window time.Duration, prefix string) *Limiter {
	return &Limiter{
		store:    store,
		fallback: NewMemoryStore(),
		limit:    limit,
		window:   window,
		prefix:   prefix,
	}
}

// Allow records a hit for key and decides whether the request may proceed.
// An empty key falls back to a shared sentinel bucket so keyless clients are
// throttled conservatively as a group. Allow never fails: store errors
// degrade to the in-memory fallback.
func (l *Limiter) Allow(ctx context.Context, key string, now time.Time) Result {
	if key == "" {
		key = "unknown"
	}
	fullKey := l.prefix + key

	var (
		hits    int
		resetAt time.Time
		err     error
	)

	if l.store != nil {
		hits, resetAt, err = l.store.Hit(ctx, fullKey, now, l.window)
	}
	if l.store == nil || err != nil {
		hits, resetAt, _ = l.fallback.Hit(ctx, fullKey, now, l.window)
	}

	remaining := l.limit - hits
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   hits <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

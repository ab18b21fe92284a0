package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreWindowSemantics(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	window := time.Minute
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	hits, resetAt, err := store.Hit(ctx, "rl:contact:1.2.3.4", start, window)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, start.Add(window), resetAt)

	// Within the window the count increments
	hits, _, err = store.Hit(ctx, "rl:contact:1.2.3.4", start.Add(30*time.Second), window)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)

	// Exactly at the boundary the window has not yet expired
	hits, _, err = store.Hit(ctx, "rl:contact:1.2.3.4", start.Add(window), window)
	require.NoError(t, err)
	assert.Equal(t, 3, hits)

	// Past the boundary the bucket resets to {1, now}
	later := start.Add(window + time.Second)
	hits, resetAt, err = store.Hit(ctx, "rl:contact:1.2.3.4", later, window)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, later.Add(window), resetAt)
}

func TestMemoryStoreIsolatesKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	hits, _, _ := store.Hit(ctx, "a", now, time.Minute)
	assert.Equal(t, 1, hits)
	hits, _, _ = store.Hit(ctx, "b", now, time.Minute)
	assert.Equal(t, 1, hits)
}

func TestLimiterBlocksAboveThreshold(t *testing.T) {
	limiter := NewLimiter(nil, 3, time.Minute, "rl:contact:")
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		res := limiter.Allow(ctx, "9.9.9.9", now)
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
	}

	res := limiter.Allow(ctx, "9.9.9.9", now)
	assert.False(t, res.Allowed, "request over the threshold must be blocked")
	assert.Equal(t, 0, res.Remaining)

	// One more request after the window has elapsed succeeds
	res = limiter.Allow(ctx, "9.9.9.9", now.Add(time.Minute+time.Second))
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestLimiterKeylessClientsShareSentinelBucket(t *testing.T) {
	limiter := NewLimiter(nil, 1, time.Minute, "rl:contact:")
	ctx := context.Background()
	now := time.Now()

	assert.True(t, limiter.Allow(ctx, "", now).Allowed)
	assert.False(t, limiter.Allow(ctx, "", now).Allowed, "all keyless clients share one bucket")
}

func TestMemoryStoreCloseStopsSweepAndStaysUsable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	hits, _, err := store.Hit(ctx, "a", now, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	store.Close()
	store.Close() // idempotent

	// Counting continues after Close; only the background cleanup stops.
	hits, _, err = store.Hit(ctx, "a", now, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestMemoryStoreCloseBeforeFirstHit(t *testing.T) {
	store := NewMemoryStore()
	store.Close()

	hits, _, err := store.Hit(context.Background(), "a", time.Now(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

// failingStore always errors, forcing the limiter onto its fallback.
type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Time, time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store unavailable")
}

func TestLimiterFallsBackOnStoreError(t *testing.T) {
	limiter := NewLimiter(failingStore{}, 2, time.Minute, "rl:contact:")
	ctx := context.Background()
	now := time.Now()

	assert.True(t, limiter.Allow(ctx, "k", now).Allowed)
	assert.True(t, limiter.Allow(ctx, "k", now).Allowed)
	assert.False(t, limiter.Allow(ctx, "k", now).Allowed, "fallback store still enforces the limit")
}

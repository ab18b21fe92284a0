package ratelimit

import (
	"context"
	"sync"
	"time"
)

// bucket tracks request count for one key.
type bucket struct {
	hits        int
	windowStart time.Time
	mu          sync.Mutex
}

// MemoryStore is a process-local Store. A background sweep, started lazily on
// the first Hit, drops buckets whose window has expired so the map does not
// grow without bound. The sweep runs until Close is called; callers that
// construct short-lived stores (tests, per-Limiter fallbacks) should Close
// them when done.
type MemoryStore struct {
	buckets   sync.Map
	sweepOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stop: make(chan struct{})}
}

// Hit implements Store. The window resets to {1, now} once more than a full
// window has passed since the window start; otherwise the count increments.
func (s *MemoryStore) Hit(_ context.Context, key string, now time.Time, window time.Duration) (int, time.Time, error) {
	s.sweepOnce.Do(func() { go s.sweep(window) })

	entryI, _ := s.buckets.LoadOrStore(key, &bucket{})
	entry := entryI.(*bucket)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.hits == 0 || now.Sub(entry.windowStart) > window {
		entry.hits = 1
		entry.windowStart = now
	} else {
		entry.hits++
	}

	return entry.hits, entry.windowStart.Add(window), nil
}

// Close stops the background sweep. Safe to call multiple times and before
// the sweep has started. Hit remains usable after Close; only the expired
// bucket cleanup stops.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// sweep drops expired buckets every few minutes.
func (s *MemoryStore) sweep(window time.Duration) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.buckets.Range(func(key, value interface{}) bool {
				entry := value.(*bucket)
				entry.mu.Lock()
				if now.Sub(entry.windowStart) > window {
					s.buckets.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}
}

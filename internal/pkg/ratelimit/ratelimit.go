// Package ratelimit provides a process-local sliding-window request counter.
//
// The Store interface is intentionally tiny (increment-and-check with implicit
// TTL) so call sites never depend on the in-memory implementation: a
// distributed-cache-backed store can replace it without touching handlers.
// The in-memory store is best-effort protection for single-instance
// deployments only; counters do not survive restarts and are not shared
// between instances.
package ratelimit

import (
	"sync"
	"time"
)

// Store counts a hit for the identifier and reports whether it is still
// within its allowance. Identifiers are typically "callerID:routePrefix".
//
// The signature matches echo's middleware.RateLimiterStore so an
// implementation can be mounted directly as middleware.
type Store interface {
	Allow(identifier string) (bool, error)
}

// SlidingWindowStore is an in-memory Store that keeps, per identifier, the
// timestamps of hits inside the current window. Expired identifiers are
// evicted lazily on access, at most once per eviction interval, so no request
// ever pays for a full-map scan and no background timer is needed.
type SlidingWindowStore struct {
	limit            int
	window           time.Duration
	evictionInterval time.Duration

	mu           sync.Mutex
	hits         map[string][]time.Time
	lastEviction time.Time

	now func() time.Time
}

// NewSlidingWindowStore creates a store allowing limit hits per window for
// each identifier.
func NewSlidingWindowStore(limit int, window time.Duration) *SlidingWindowStore {
	return &SlidingWindowStore{
		limit:            limit,
		window:           window,
		evictionInterval: window,
		hits:             make(map[string][]time.Time),
		now:              time.Now,
	}
}

// Allow records a hit for the identifier and returns false when the
// identifier already spent its allowance inside the sliding window.
// The denied hit itself is not recorded, so a caller that backs off
// recovers as soon as old hits age out.
func (s *SlidingWindowStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.maybeEvict(now)

	recent := pruneOlderThan(s.hits[identifier], now.Add(-s.window))
	if len(recent) >= s.limit {
		s.hits[identifier] = recent
		return false, nil
	}

	s.hits[identifier] = append(recent, now)
	return true, nil
}

// Window returns the configured window length, for Retry-After hints.
func (s *SlidingWindowStore) Window() time.Duration {
	return s.window
}

// maybeEvict drops identifiers with no hits inside the window. Runs at most
// once per eviction interval; callers hold the mutex.
func (s *SlidingWindowStore) maybeEvict(now time.Time) {
	if now.Sub(s.lastEviction) < s.evictionInterval {
		return
	}
	s.lastEviction = now

	cutoff := now.Add(-s.window)
	for id, stamps := range s.hits {
		if len(stamps) == 0 || stamps[len(stamps)-1].Before(cutoff) {
			delete(s.hits, id)
		}
	}
}

func pruneOlderThan(stamps []time.Time, cutoff time.Time) []time.Time {
	idx := 0
	for idx < len(stamps) && stamps[idx].Before(cutoff) {
		idx++
	}
	return stamps[idx:]
}

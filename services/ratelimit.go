package services

import (
	"sync"
	"time"
)

// SlidingWindowLimiter permits at most Limit events per identity inside a
// trailing window. Stale timestamps are evicted before the count check, and
// eviction, check and record happen under one lock so two concurrent
// requests cannot both slip through at the boundary.
//
// State is in-memory and resets on process restart; acceptable for the
// password recovery flow it guards.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
}

func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

// Allow reports whether a new event is permitted for the identity at the
// given moment, recording it when permitted.
func (l *SlidingWindowLimiter) Allow(identity string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[identity][:0]
	for _, t := range l.hits[identity] {
		if now.Sub(t) < l.window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.hits[identity] = recent
		return false
	}

	l.hits[identity] = append(recent, now)
	return true
}

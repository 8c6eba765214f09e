package services

import (
	"context"
	"log"
	"sync"
	"time"

	"notebin/utils"
)

// LastRunTracker is the process-wide throttle for the purge sweep. Begin
// reports whether a sweep may run now; the caller marks completion with
// Commit, so a failed sweep does not advance the window and the next
// eligible attempt retries.
type LastRunTracker struct {
	mu      sync.Mutex
	lastRun time.Time
	window  time.Duration
}

func NewLastRunTracker(window time.Duration) *LastRunTracker {
	return &LastRunTracker{window: window}
}

func (t *LastRunTracker) Begin(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.lastRun.IsZero() && now.Sub(t.lastRun) < t.window {
		return false
	}
	return true
}

func (t *LastRunTracker) Commit(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastRun = now
}

// PurgeStore hard-deletes notes whose soft deletion predates the cutoff.
type PurgeStore interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeScheduler runs the bin sweep on its own ticker instead of riding on
// request handling. The tracker still enforces the process-wide window, and
// the sweep never surfaces errors: failures are logged, the window is not
// advanced, and the next tick retries.
type PurgeScheduler struct {
	Store     PurgeStore
	Tracker   *LastRunTracker
	Retention time.Duration
	Interval  time.Duration
}

func NewPurgeScheduler(store PurgeStore, retention, window, interval time.Duration) *PurgeScheduler {
	return &PurgeScheduler{
		Store:     store,
		Tracker:   NewLastRunTracker(window),
		Retention: retention,
		Interval:  interval,
	}
}

// Start launches the sweep loop; it stops when ctx is cancelled.
func (s *PurgeScheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(time.Now())
			}
		}
	}()
}

// Sweep purges notes past the retention window. Safe to call from any
// goroutine; concurrent calls inside the throttle window are cheap no-ops.
func (s *PurgeScheduler) Sweep(now time.Time) {
	if !s.Tracker.Begin(now) {
		utils.PurgeSweepsTotal.WithLabelValues("throttled").Inc()
		return
	}

	// Store may legitimately be unset during startup; skip without
	// advancing the window so the next attempt retries.
	if s.Store == nil {
		utils.PurgeSweepsTotal.WithLabelValues("skipped").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := now.Add(-s.Retention)
	purged, err := s.Store.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("purge sweep failed, will retry next window: %v", err)
		utils.PurgeSweepsTotal.WithLabelValues("skipped").Inc()
		return
	}

	if purged > 0 {
		log.Printf("purge sweep removed %d notes past retention", purged)
	}
	utils.NotesPurgedTotal.Add(float64(purged))
	utils.PurgeSweepsTotal.WithLabelValues("ran").Inc()
	s.Tracker.Commit(now)
}

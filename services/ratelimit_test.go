package services

import (
	"testing"
	"time"
)

func TestSlidingWindowLimiter(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("allows up to the limit then denies", func(t *testing.T) {
		limiter := NewSlidingWindowLimiter(5, time.Hour)

		for i := 0; i < 5; i++ {
			if !limiter.Allow("a@example.com", base.Add(time.Duration(i)*time.Minute)) {
				t.Fatalf("Request %d denied inside the limit", i+1)
			}
		}
		if limiter.Allow("a@example.com", base.Add(10*time.Minute)) {
			t.Error("Sixth request allowed inside the window")
		}
	})

	t.Run("old hits fall out of the window", func(t *testing.T) {
		limiter := NewSlidingWindowLimiter(5, time.Hour)

		for i := 0; i < 5; i++ {
			limiter.Allow("a@example.com", base)
		}
		if limiter.Allow("a@example.com", base.Add(59*time.Minute)) {
			t.Error("Request allowed while all hits are still recent")
		}
		if !limiter.Allow("a@example.com", base.Add(61*time.Minute)) {
			t.Error("Request denied after the window slid past the hits")
		}
	})

	t.Run("denied attempts are not recorded", func(t *testing.T) {
		limiter := NewSlidingWindowLimiter(1, time.Hour)

		limiter.Allow("a@example.com", base)
		// Hammering while denied must not extend the lockout.
		for i := 1; i < 30; i++ {
			limiter.Allow("a@example.com", base.Add(time.Duration(i)*time.Minute))
		}
		if !limiter.Allow("a@example.com", base.Add(61*time.Minute)) {
			t.Error("Denied attempts extended the lockout")
		}
	})

	t.Run("identities are independent", func(t *testing.T) {
		limiter := NewSlidingWindowLimiter(1, time.Hour)

		if !limiter.Allow("a@example.com", base) {
			t.Fatal("First identity denied")
		}
		if !limiter.Allow("b@example.com", base) {
			t.Error("Second identity throttled by the first")
		}
	})
}

package view

import (
	"time"

	"go.uber.org/atomic"
)

// DefaultSplashDuration is how long the splash title stays on screen.
const DefaultSplashDuration = 2000 * time.Millisecond

// SplashTimer is a one-shot timer driven by the UI loop clock.
// It fires at most once and never after Cancel.
type SplashTimer struct {
	duration  time.Duration
	start     time.Time
	started   bool
	fired     *atomic.Bool
	cancelled *atomic.Bool
}

// NewSplashTimer creates a timer. A non-positive duration uses DefaultSplashDuration.
func NewSplashTimer(duration time.Duration) *SplashTimer {
	if duration <= 0 {
		duration = DefaultSplashDuration
	}
	return &SplashTimer{
		duration:  duration,
		fired:     atomic.NewBool(false),
		cancelled: atomic.NewBool(false),
	}
}

// Start arms the timer at now. Calling it again has no effect.
func (t *SplashTimer) Start(now time.Time) {
	if t.started {
		return
	}
	t.start = now
	t.started = true
}

// Fire reports true exactly once, on the first call at or after the deadline.
func (t *SplashTimer) Fire(now time.Time) bool {
	if !t.started || t.cancelled.Load() {
		return false
	}
	if now.Sub(t.start) < t.duration {
		return false
	}
	return t.fired.CompareAndSwap(false, true)
}

// Cancel disarms the timer. Safe to call from any goroutine.
func (t *SplashTimer) Cancel() {
	t.cancelled.Store(true)
}

// Fired reports whether the timer has fired.
func (t *SplashTimer) Fired() bool {
	return t.fired.Load()
}

// Remaining returns the time left before the deadline, never negative.
func (t *SplashTimer) Remaining(now time.Time) time.Duration {
	if !t.started {
		return t.duration
	}
	return max(t.duration-now.Sub(t.start), 0)
}

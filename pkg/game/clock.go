package game

import (
	"fmt"
	"time"
)

// Clock measures the time a run has spent in play. It only moves when
// Advance is called, so a paused clock or an idle frame loses nothing.
// A zero Duration means the clock never expires.
type Clock struct {
	Duration time.Duration
	Elapsed  time.Duration
	Paused   bool
}

func NewClock(duration time.Duration) *Clock {
	return &Clock{Duration: duration}
}

func (cl *Clock) String() string {
	r := cl.Remaining()
	return fmt.Sprintf("%d:%02d", int(r.Minutes()), int(r.Seconds())%60)
}

func (cl *Clock) Advance(dt time.Duration) {
	if cl.Paused || dt <= 0 {
		return
	}
	cl.Elapsed += dt
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

func (cl *Clock) Resume() {
	cl.Paused = false
}

func (cl *Clock) Reset() {
	cl.Elapsed = 0
	cl.Paused = false
}

func (cl *Clock) Timed() bool {
	return cl.Duration > 0
}

// Remaining returns the time left before expiry, never below zero.
func (cl *Clock) Remaining() time.Duration {
	if !cl.Timed() || cl.Elapsed >= cl.Duration {
		return 0
	}
	return cl.Duration - cl.Elapsed
}

func (cl *Clock) Expired() bool {
	return cl.Timed() && cl.Elapsed >= cl.Duration
}

func (cl *Clock) Progress() float64 {
	if !cl.Timed() {
		return 0
	}
	if cl.Elapsed >= cl.Duration {
		return 1
	}
	return float64(cl.Elapsed) / float64(cl.Duration)
}

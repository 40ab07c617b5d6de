// Package timer provides the one-shot countdown used for weapon reloads,
// behaviour steps and level phases.
package timer

import (
	"math"
	"time"
)

// Timer is a one-shot countdown. Once elapsed reaches the duration the timer
// is finished and stays finished until Reset. It never restarts on its own.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	finished bool
}

// New returns a timer counting down d. Negative durations clamp to zero
// and a zero-duration timer starts out finished.
func New(d time.Duration) Timer {
	if d < 0 {
		d = 0
	}
	return Timer{duration: d, finished: d == 0}
}

// FromSeconds is New for durations expressed in seconds.
func FromSeconds(secs float64) Timer {
	return New(Seconds(secs))
}

// Seconds converts fractional seconds to a Duration, rounding to the
// nearest nanosecond.
func Seconds(secs float64) time.Duration {
	return time.Duration(math.Round(secs * float64(time.Second)))
}

// Tick advances the timer by dt. The finish check is inclusive: elapsed equal
// to the duration finishes the timer. Negative dt counts as zero.
func (t *Timer) Tick(dt time.Duration) {
	if t.finished {
		return
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.finished = true
	}
}

// Reset restarts the countdown from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = t.duration == 0
}

// SetDuration changes the configured duration without touching elapsed time
// or the finished flag. Call Reset to restart with the new duration.
func (t *Timer) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.duration = d
}

// Finished reports whether the countdown has run out since the last Reset.
func (t Timer) Finished() bool {
	return t.finished
}

func (t Timer) Duration() time.Duration {
	return t.duration
}

// Elapsed is the time counted since the last Reset, capped at the duration.
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining is never negative, even after SetDuration shrinks the duration
// below the elapsed time.
func (t Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Fraction is elapsed/duration in [0, 1]; a zero-duration timer reports 1.
func (t Timer) Fraction() float64 {
	if t.duration == 0 {
		return 1
	}
	return math.Min(float64(t.elapsed)/float64(t.duration), 1)
}

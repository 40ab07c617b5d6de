package timer

import (
	"testing"
	"time"
)

func TestTimerFinishIsInclusive(t *testing.T) {
	timer := New(time.Second)

	timer.Tick(999 * time.Millisecond)
	if timer.Finished() {
		t.Fatal("timer finished before its duration elapsed")
	}

	timer.Tick(time.Millisecond)
	if !timer.Finished() {
		t.Fatal("timer should finish exactly at its duration")
	}
	if timer.Elapsed() != time.Second {
		t.Errorf("expected elapsed to saturate at 1s, got %v", timer.Elapsed())
	}
}

func TestTimerStaysFinishedUntilReset(t *testing.T) {
	timer := New(100 * time.Millisecond)
	timer.Tick(time.Second)

	for i := 0; i < 3; i++ {
		timer.Tick(0)
		if !timer.Finished() {
			t.Fatalf("tick %d: finished flag was cleared without a reset", i)
		}
	}

	timer.Reset()
	if timer.Finished() {
		t.Fatal("reset should clear the finished flag")
	}
	if timer.Elapsed() != 0 {
		t.Errorf("reset should zero elapsed, got %v", timer.Elapsed())
	}
}

func TestTimerNegativeAndZeroTicks(t *testing.T) {
	timer := New(time.Second)
	timer.Tick(-5 * time.Second)
	if timer.Elapsed() != 0 {
		t.Errorf("negative tick should be a no-op, elapsed=%v", timer.Elapsed())
	}
	timer.Tick(0)
	if timer.Elapsed() != 0 || timer.Finished() {
		t.Errorf("zero tick should be a no-op, elapsed=%v finished=%v", timer.Elapsed(), timer.Finished())
	}
}

func TestZeroDurationTimerStartsFinished(t *testing.T) {
	timer := New(0)
	if !timer.Finished() {
		t.Fatal("zero-duration timer should start finished")
	}
	timer.Reset()
	if !timer.Finished() {
		t.Fatal("zero-duration timer should stay finished after reset")
	}
	if New(-time.Second).Duration() != 0 {
		t.Error("negative duration should clamp to zero")
	}
}

func TestTimerSetDuration(t *testing.T) {
	timer := New(time.Second)
	timer.Tick(time.Second)

	timer.SetDuration(2 * time.Second)
	if !timer.Finished() {
		t.Fatal("SetDuration should not clear the finished flag")
	}

	timer.Reset()
	timer.Tick(time.Second)
	if timer.Finished() {
		t.Fatal("timer should use the new duration after reset")
	}
	if got := timer.Remaining(); got != time.Second {
		t.Errorf("expected 1s remaining, got %v", got)
	}
	if got := timer.Fraction(); got != 0.5 {
		t.Errorf("expected fraction 0.5, got %v", got)
	}
}

func TestTimerShrunkDurationStaysInRange(t *testing.T) {
	timer := New(time.Second)
	timer.Tick(time.Second)

	timer.SetDuration(500 * time.Millisecond)
	if got := timer.Remaining(); got != 0 {
		t.Errorf("expected no time remaining, got %v", got)
	}
	if got := timer.Fraction(); got != 1 {
		t.Errorf("expected fraction 1, got %v", got)
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want time.Duration
	}{
		{0, 0},
		{0.1, 100 * time.Millisecond},
		{0.4, 400 * time.Millisecond},
		{0.5, 500 * time.Millisecond},
		{2, 2 * time.Second},
	}
	for _, tt := range tests {
		if got := Seconds(tt.in); got != tt.want {
			t.Errorf("Seconds(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package behavior

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/starwave/shared/timer"
)

var ErrEmptySequence = errors.New("behavior sequence has no steps")

// Step is one entry of a Sequence: the behaviours to run and for how long
// (seconds).
type Step struct {
	Behaviors Set     `yaml:"behaviors"`
	Duration  float64 `yaml:"duration"`
}

// Sequence is an ordered, repeating list of steps.
type Sequence []Step

func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	for i, step := range s {
		if step.Duration <= 0 {
			return fmt.Errorf("step %d: duration must be positive, got %v", i, step.Duration)
		}
	}
	return nil
}

// Tracker follows a mob's position in its Sequence.
type Tracker struct {
	Timer timer.Timer
	Index int
}

// NewTracker starts at the first step. It returns the initial behaviours.
func NewTracker(seq Sequence) (*Tracker, Set, error) {
	if err := seq.Validate(); err != nil {
		return nil, nil, err
	}
	return &Tracker{Timer: timer.FromSeconds(seq[0].Duration)}, seq[0].Behaviors, nil
}

// Update advances the current step by dt. When the step's time runs out the
// tracker moves to the next step, wrapping at the end, and returns its
// behaviours with changed set to true.
func (t *Tracker) Update(seq Sequence, dt time.Duration) (Set, bool) {
	if len(seq) == 0 {
		return nil, false
	}

	t.Timer.Tick(dt)
	if !t.Timer.Finished() {
		return seq[t.Index%len(seq)].Behaviors, false
	}

	t.Index = (t.Index + 1) % len(seq)
	next := seq[t.Index]
	t.Timer.SetDuration(timer.Seconds(next.Duration))
	t.Timer.Reset()
	return next.Behaviors, true
}

package behavior

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func testSequence() Sequence {
	return Sequence{
		{Behaviors: Set{MoveDown}, Duration: 1},
		{Behaviors: Set{BrakeHorizontal, FireWeapon}, Duration: 0.5},
		{Behaviors: Set{MoveLeft}, Duration: 2},
	}
}

func TestTrackerStartsAtFirstStep(t *testing.T) {
	tr, set, err := NewTracker(testSequence())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	if tr.Index != 0 || !set.Has(MoveDown) {
		t.Errorf("expected first step, got index=%d set=%v", tr.Index, set)
	}
}

func TestTrackerAdvancesAndWraps(t *testing.T) {
	seq := testSequence()
	tr, _, _ := NewTracker(seq)

	steps := []struct {
		dt      time.Duration
		index   int
		changed bool
		has     Behavior
	}{
		{500 * time.Millisecond, 0, false, MoveDown},
		{500 * time.Millisecond, 1, true, FireWeapon},
		{500 * time.Millisecond, 2, true, MoveLeft},
		{time.Second, 2, false, MoveLeft},
		{time.Second, 0, true, MoveDown},
	}
	for i, s := range steps {
		set, changed := tr.Update(seq, s.dt)
		if tr.Index != s.index || changed != s.changed || !set.Has(s.has) {
			t.Fatalf("step %d: index=%d changed=%v set=%v, want index=%d changed=%v has %v",
				i, tr.Index, changed, set, s.index, s.changed, s.has)
		}
	}
}

func TestSequenceValidate(t *testing.T) {
	if _, _, err := NewTracker(nil); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
	bad := Sequence{{Behaviors: Set{MoveDown}, Duration: 0}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero-duration step")
	}
}

func TestBehaviorYAML(t *testing.T) {
	var step Step
	doc := "behaviors: [move_down, fire_weapon]\nduration: 2.5\n"
	if err := yaml.Unmarshal([]byte(doc), &step); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !step.Behaviors.Has(MoveDown) || !step.Behaviors.Has(FireWeapon) || step.Duration != 2.5 {
		t.Errorf("got %+v", step)
	}

	var b Behavior
	if err := b.UnmarshalText([]byte("teleport")); err == nil {
		t.Error("expected error for unknown behavior")
	}
	if FireWeapon.String() != "fire_weapon" {
		t.Errorf("got %q", FireWeapon.String())
	}
}

package run

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func testPhases() []Phase {
	return []Phase{
		{Name: "Wave 1", Kind: Formation, Duration: 2, SpawnPeriod: 0.5, Mobs: []string{"drone", "shooter"}},
		{Name: "Rest", Kind: Break, Duration: 1},
		{Name: "Mothership", Kind: Boss, Boss: "mothership"},
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestTrackerRunsThroughPhases(t *testing.T) {
	tr, err := NewTracker(testPhases(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}

	events := tr.Update(0)
	if len(events) != 1 || events[0].Kind != PhaseStarted || events[0].Phase != 0 {
		t.Fatalf("expected phase 0 start, got %+v", events)
	}

	spawns := 0
	for i := 0; i < 4; i++ {
		for _, e := range tr.Update(500 * time.Millisecond) {
			switch e.Kind {
			case SpawnMob:
				spawns++
				if e.Mob != "drone" && e.Mob != "shooter" {
					t.Errorf("spawned mob %q outside the pool", e.Mob)
				}
			case PhaseStarted:
				if e.Phase != 1 {
					t.Errorf("expected break phase to start, got %d", e.Phase)
				}
			}
		}
	}
	if spawns != 4 {
		t.Errorf("expected 4 spawns in a 2s formation at 0.5s, got %d", spawns)
	}
	if p, i, _ := tr.Current(); i != 1 || p.Kind != Break {
		t.Fatalf("expected break phase, got %d %v", i, p.Kind)
	}

	events = tr.Update(time.Second)
	got := kinds(events)
	if len(got) != 2 || got[0] != PhaseStarted || got[1] != SpawnBoss || events[1].Mob != "mothership" {
		t.Fatalf("expected boss phase start and spawn, got %+v", events)
	}

	if events := tr.Update(time.Hour); len(events) != 0 {
		t.Fatalf("boss phase should not end on time, got %+v", events)
	}

	tr.BossDefeated()
	events = tr.Update(0)
	if len(events) != 1 || events[0].Kind != RunComplete {
		t.Fatalf("expected run complete, got %+v", events)
	}
	if !tr.Complete() {
		t.Error("tracker should report completion")
	}
	if events := tr.Update(time.Second); events != nil {
		t.Errorf("completed tracker should be inert, got %+v", events)
	}
}

func TestBossDefeatedIgnoredOutsideBossPhase(t *testing.T) {
	tr, _ := NewTracker(testPhases(), rand.New(rand.NewSource(1)))
	tr.Update(0)
	tr.BossDefeated()
	if tr.bossDefeated {
		t.Error("boss flag set during a formation phase")
	}
}

func TestNewTrackerValidates(t *testing.T) {
	if _, err := NewTracker(nil, nil); !errors.Is(err, ErrNoPhases) {
		t.Errorf("expected ErrNoPhases, got %v", err)
	}

	bad := [][]Phase{
		{{Name: "a", Kind: Formation, Duration: 1, SpawnPeriod: 0, Mobs: []string{"x"}}},
		{{Name: "b", Kind: Formation, Duration: 1, SpawnPeriod: 1}},
		{{Name: "c", Kind: Break}},
		{{Name: "d", Kind: Boss}},
	}
	for _, phases := range bad {
		if _, err := NewTracker(phases, nil); !errors.Is(err, ErrInvalidPhase) {
			t.Errorf("%s: expected ErrInvalidPhase, got %v", phases[0].Name, err)
		}
	}
}

func TestRemaining(t *testing.T) {
	tr, _ := NewTracker(testPhases(), rand.New(rand.NewSource(1)))
	if tr.Remaining() != 0 {
		t.Error("expected zero before start")
	}
	tr.Update(0)
	tr.Update(500 * time.Millisecond)
	if got := tr.Remaining(); got != 1500*time.Millisecond {
		t.Errorf("expected 1.5s remaining, got %v", got)
	}
}

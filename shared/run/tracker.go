package run

import (
	"errors"
	"math/rand"
	"time"

	"github.com/automoto/starwave/shared/timer"
)

var ErrNoPhases = errors.New("run has no phases")

// EventKind tags what a Tracker update produced.
type EventKind int

const (
	PhaseStarted EventKind = iota
	SpawnMob
	SpawnBoss
	RunComplete
)

// Event is emitted by Tracker.Update. Mob is set for SpawnMob and SpawnBoss.
type Event struct {
	Kind  EventKind
	Phase int
	Mob   string
}

// Tracker walks a run's phases in order.
type Tracker struct {
	phases []Phase
	rng    *rand.Rand

	index        int
	started      bool
	complete     bool
	bossDefeated bool
	phaseTimer   timer.Timer
	spawnTimer   timer.Timer
}

// NewTracker validates phases and returns a tracker positioned before the
// first phase. rng picks formation mobs; nil uses a time-seeded source.
func NewTracker(phases []Phase, rng *rand.Rand) (*Tracker, error) {
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}
	for _, p := range phases {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Tracker{phases: phases, rng: rng}, nil
}

// Update advances the current phase by dt and returns what happened. The
// first call starts phase 0.
func (t *Tracker) Update(dt time.Duration) []Event {
	if t.complete {
		return nil
	}

	var events []Event
	if !t.started {
		t.started = true
		return t.enter(0, events)
	}

	p := t.phases[t.index]
	switch p.Kind {
	case Formation:
		t.spawnTimer.Tick(dt)
		if t.spawnTimer.Finished() {
			events = append(events, Event{Kind: SpawnMob, Phase: t.index, Mob: p.Mobs[t.rng.Intn(len(p.Mobs))]})
			t.spawnTimer.Reset()
		}
		t.phaseTimer.Tick(dt)
		if t.phaseTimer.Finished() {
			events = t.enter(t.index+1, events)
		}
	case Break:
		t.phaseTimer.Tick(dt)
		if t.phaseTimer.Finished() {
			events = t.enter(t.index+1, events)
		}
	case Boss:
		if t.bossDefeated {
			events = t.enter(t.index+1, events)
		}
	}
	return events
}

func (t *Tracker) enter(i int, events []Event) []Event {
	if i >= len(t.phases) {
		t.complete = true
		return append(events, Event{Kind: RunComplete, Phase: t.index})
	}

	t.index = i
	t.bossDefeated = false
	p := t.phases[i]
	t.phaseTimer = timer.FromSeconds(p.Duration)
	t.spawnTimer = timer.FromSeconds(p.SpawnPeriod)

	events = append(events, Event{Kind: PhaseStarted, Phase: i})
	if p.Kind == Boss {
		events = append(events, Event{Kind: SpawnBoss, Phase: i, Mob: p.Boss})
	}
	return events
}

// BossDefeated ends the current boss phase on the next Update.
func (t *Tracker) BossDefeated() {
	if t.started && !t.complete && t.phases[t.index].Kind == Boss {
		t.bossDefeated = true
	}
}

// Current returns the active phase and its index.
func (t *Tracker) Current() (Phase, int, bool) {
	if !t.started || t.complete {
		return Phase{}, t.index, false
	}
	return t.phases[t.index], t.index, true
}

// Remaining is the time left in a timed phase.
func (t *Tracker) Remaining() time.Duration {
	if !t.started || t.complete || t.phases[t.index].Kind == Boss {
		return 0
	}
	return t.phaseTimer.Remaining()
}

func (t *Tracker) Complete() bool {
	return t.complete
}

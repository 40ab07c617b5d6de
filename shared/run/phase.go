// Package run sequences the level phases of a game run: timed formation
// waves, breaks, and boss fights that end when the boss dies.
package run

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPhase = errors.New("invalid phase")

// Kind is the type of a level phase.
type Kind int

const (
	Formation Kind = iota
	Break
	Boss
)

func (k Kind) String() string {
	switch k {
	case Formation:
		return "formation"
	case Break:
		return "break"
	case Boss:
		return "boss"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "formation":
		*k = Formation
	case "break":
		*k = Break
	case "boss":
		*k = Boss
	default:
		return fmt.Errorf("unknown phase kind %q", text)
	}
	return nil
}

// Phase is one stage of a run. Durations are seconds.
type Phase struct {
	Name        string   `yaml:"name"`
	Kind        Kind     `yaml:"kind"`
	Duration    float64  `yaml:"duration"`
	SpawnPeriod float64  `yaml:"spawn_period"`
	Mobs        []string `yaml:"mobs"`
	Boss        string   `yaml:"boss"`
}

func (p Phase) Validate() error {
	switch p.Kind {
	case Formation:
		if p.Duration <= 0 || p.SpawnPeriod <= 0 {
			return fmt.Errorf("%w %q: formation needs positive duration and spawn_period", ErrInvalidPhase, p.Name)
		}
		if len(p.Mobs) == 0 {
			return fmt.Errorf("%w %q: formation has no mobs", ErrInvalidPhase, p.Name)
		}
	case Break:
		if p.Duration <= 0 {
			return fmt.Errorf("%w %q: break needs a positive duration", ErrInvalidPhase, p.Name)
		}
	case Boss:
		if p.Boss == "" {
			return fmt.Errorf("%w %q: boss phase names no boss", ErrInvalidPhase, p.Name)
		}
	}
	return nil
}

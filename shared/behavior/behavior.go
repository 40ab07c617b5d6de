// Package behavior describes what mobs do each tick and steps mobs through
// timed behaviour sequences.
package behavior

import (
	"fmt"
	"strings"
)

// Behavior is a single per-tick mob action.
type Behavior int

const (
	MoveDown Behavior = iota
	MoveLeft
	MoveRight
	BrakeHorizontal
	MoveToCenter
	FireWeapon
	SpawnMob
	ReceiveDamageOnImpact
)

var names = map[Behavior]string{
	MoveDown:              "move_down",
	MoveLeft:              "move_left",
	MoveRight:             "move_right",
	BrakeHorizontal:       "brake_horizontal",
	MoveToCenter:          "move_to_center",
	FireWeapon:            "fire_weapon",
	SpawnMob:              "spawn_mob",
	ReceiveDamageOnImpact: "receive_damage_on_impact",
}

func (b Behavior) String() string {
	if n, ok := names[b]; ok {
		return n
	}
	return fmt.Sprintf("Behavior(%d)", int(b))
}

func (b *Behavior) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for k, v := range names {
		if v == s {
			*b = k
			return nil
		}
	}
	return fmt.Errorf("unknown mob behavior %q", text)
}

// Set is a list of active behaviours.
type Set []Behavior

func (s Set) Has(b Behavior) bool {
	for _, x := range s {
		if x == b {
			return true
		}
	}
	return false
}

// Package gamedata loads the declarative game data (characters, mobs and
// level phases). Like leveldata it has no dependencies on ebitengine,
// donburi, or resolv.
package gamedata

import (
	"github.com/automoto/starwave/shared/behavior"
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/run"
	"github.com/automoto/starwave/shared/weapon"
)

// Color is an RGB triple.
type Color [3]uint8

// Character is a selectable player ship.
type Character struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Health      float64 `yaml:"health"`
	// Movement in px/s and px/s².
	Speed        float64 `yaml:"speed"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`

	Collider gamemath.Vec2     `yaml:"collider"`
	Color    Color             `yaml:"color"`
	Money    int               `yaml:"money"`
	Weapon   weapon.WeaponData `yaml:"weapon"`
	// InheritVelocity adds the ship's velocity to its projectiles.
	InheritVelocity bool `yaml:"inherit_velocity"`
}

// MobSpawner makes a mob periodically spawn other mobs.
type MobSpawner struct {
	Mob    string        `yaml:"mob"`
	Period float64       `yaml:"period"`
	Offset gamemath.Vec2 `yaml:"offset"`
}

// MobData describes a mob type.
type MobData struct {
	Type      string             `yaml:"type"`
	Behaviors behavior.Set       `yaml:"behaviors"`
	Sequence  behavior.Sequence  `yaml:"behavior_sequence"`
	Weapon    *weapon.WeaponData `yaml:"weapon"`
	Spawner   *MobSpawner        `yaml:"mob_spawner"`

	Speed        gamemath.Vec2 `yaml:"speed"`
	Acceleration gamemath.Vec2 `yaml:"acceleration"`
	Deceleration gamemath.Vec2 `yaml:"deceleration"`

	Health          float64 `yaml:"health"`
	CollisionDamage float64 `yaml:"collision_damage"`
	DefenseDamage   float64 `yaml:"defense_damage"`

	Collider gamemath.Vec2 `yaml:"collider"`
	Color    Color         `yaml:"color"`
	Money    int           `yaml:"money"`
	Score    int           `yaml:"score"`
}

// Database is everything loaded from the data directory.
type Database struct {
	Characters []Character
	Mobs       map[string]MobData
	Phases     []run.Phase
}

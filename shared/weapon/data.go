package weapon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/starwave/shared/gamemath"
)

var ErrInvalidWeapon = errors.New("invalid weapon data")

// FireMode controls whether the reload timer re-arms itself.
type FireMode int

const (
	// Automatic resets the reload timer as soon as it finishes.
	Automatic FireMode = iota
	// Manual leaves the reload timer finished until the owner resets it.
	Manual
)

func (m FireMode) String() string {
	switch m {
	case Automatic:
		return "automatic"
	case Manual:
		return "manual"
	}
	return fmt.Sprintf("FireMode(%d)", int(m))
}

func (m *FireMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "automatic":
		*m = Automatic
	case "manual":
		*m = Manual
	default:
		return fmt.Errorf("unknown fire mode %q", text)
	}
	return nil
}

// Faction decides which entities a projectile can hurt.
type Faction int

const (
	Neutral Faction = iota
	Ally
	Enemy
)

func (f Faction) String() string {
	switch f {
	case Neutral:
		return "neutral"
	case Ally:
		return "ally"
	case Enemy:
		return "enemy"
	}
	return fmt.Sprintf("Faction(%d)", int(f))
}

func (f *Faction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "neutral":
		*f = Neutral
	case "ally":
		*f = Ally
	case "enemy":
		*f = Enemy
	default:
		return fmt.Errorf("unknown faction %q", text)
	}
	return nil
}

// ProjectileKind is the visual/physical flavour of a projectile.
type ProjectileKind int

const (
	Blast ProjectileKind = iota
	Bullet
)

func (k ProjectileKind) String() string {
	switch k {
	case Blast:
		return "blast"
	case Bullet:
		return "bullet"
	}
	return fmt.Sprintf("ProjectileKind(%d)", int(k))
}

func (k *ProjectileKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "blast":
		*k = Blast
	case "bullet":
		*k = Bullet
	default:
		return fmt.Errorf("unknown projectile kind %q", text)
	}
	return nil
}

// ProjectileType identifies what a weapon spawns.
type ProjectileType struct {
	Kind    ProjectileKind `yaml:"kind"`
	Faction Faction        `yaml:"faction"`
}

func (p ProjectileType) String() string {
	return p.Faction.String() + "_" + p.Kind.String()
}

// PositionMode selects how SpawnPosition.Offset is interpreted.
type PositionMode int

const (
	// Local offsets are relative to the firing entity.
	Local PositionMode = iota
	// Global offsets are absolute world positions.
	Global
)

func (m *PositionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "local":
		*m = Local
	case "global":
		*m = Global
	default:
		return fmt.Errorf("unknown spawn position mode %q", text)
	}
	return nil
}

// SpawnPosition is where projectiles appear.
type SpawnPosition struct {
	Mode   PositionMode  `yaml:"mode"`
	Offset gamemath.Vec2 `yaml:"offset"`
}

// WeaponData is the declarative description of a weapon. Durations are in
// seconds and angles in radians.
type WeaponData struct {
	Ammunition    ProjectileType `yaml:"ammunition"`
	Damage        float64        `yaml:"damage"`
	Position      SpawnPosition  `yaml:"position"`
	ReloadTime    float64        `yaml:"reload_time"`
	InitialTime   float64        `yaml:"initial_time"`
	Speed         float64        `yaml:"speed"`
	Direction     float64        `yaml:"direction"`
	DespawnTime   float64        `yaml:"despawn_time"`
	Count         int            `yaml:"count"`
	SpreadWeights gamemath.Vec2  `yaml:"spread_weights"`
	FireMode      FireMode       `yaml:"fire_mode"`
	Capacity      int            `yaml:"capacity"`
	MaxSpreadArc  float64        `yaml:"max_spread_arc"`
	ProjectileGap float64        `yaml:"projectile_gap"`
}

// Validate rejects data the timer state machine does not accept.
func (d WeaponData) Validate() error {
	switch {
	case d.ReloadTime < 0:
		return fmt.Errorf("%w: negative reload_time %v", ErrInvalidWeapon, d.ReloadTime)
	case d.InitialTime < 0:
		return fmt.Errorf("%w: negative initial_time %v", ErrInvalidWeapon, d.InitialTime)
	case d.DespawnTime < 0:
		return fmt.Errorf("%w: negative despawn_time %v", ErrInvalidWeapon, d.DespawnTime)
	case d.Count < 1:
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidWeapon, d.Count)
	case d.Capacity < 0:
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidWeapon, d.Capacity)
	case d.MaxSpreadArc < 0 || d.ProjectileGap < 0:
		return fmt.Errorf("%w: spread arc and gap must not be negative", ErrInvalidWeapon)
	}
	return nil
}

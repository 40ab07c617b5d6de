package components

import (
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpawnProjectile asks the projectile spawner to fire one volley of a weapon.
type SpawnProjectile struct {
	Owner donburi.Entity
	// Source is the centre of the firing entity.
	Source gamemath.Vec2
	// Velocity of the firing entity, added when Inherit is set.
	Velocity gamemath.Vec2
	Inherit  bool
	Weapon   weapon.Weapon
}

// SpawnMob asks the mob spawner to create a mob.
type SpawnMob struct {
	Type     string
	Position gamemath.Vec2
	Boss     bool
}

var (
	SpawnProjectileEvent = events.NewEventType[SpawnProjectile]()
	SpawnMobEvent        = events.NewEventType[SpawnMob]()
)

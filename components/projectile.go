package components

import (
	"github.com/automoto/starwave/shared/timer"
	"github.com/automoto/starwave/shared/weapon"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Type   weapon.ProjectileType
	Damage float64
	// Owner is the entity whose weapon fired this projectile.
	Owner   donburi.Entity
	Despawn timer.Timer
}

var Projectile = donburi.NewComponentType[ProjectileData]()

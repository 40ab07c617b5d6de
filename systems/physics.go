package systems

import (
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every entity by its velocity. Ships and mobs stop at
// solid barriers; the player is also kept below the top of the arena.
// Projectiles move freely.
func UpdatePhysics(ecs *ecs.ECS) {
	secs := tickDuration().Seconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		dx := physics.Velocity.X * secs
		dy := physics.Velocity.Y * secs

		if e.HasComponent(components.Projectile) {
			obj.X += dx
			obj.Y += dy
			return
		}

		if dx != 0 {
			if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
				if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
					dx = check.ContactWithObject(solids[0]).X()
					physics.Velocity.X = 0
				}
			}
			obj.X += dx
		}

		if e.HasComponent(components.Player) {
			if dy != 0 {
				if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
					if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
						dy = check.ContactWithObject(solids[0]).Y()
						physics.Velocity.Y = 0
					}
				}
			}
			if obj.Y+dy < 0 {
				dy = -obj.Y
				physics.Velocity.Y = 0
			}
		}
		obj.Y += dy
	})
}

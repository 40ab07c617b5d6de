package systems

import (
	"math"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns movement input into ship velocity.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	secs := tickDuration().Seconds()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		player.ContactCooldown.Tick(tickDuration())

		physics.Velocity.X = steer(physics.Velocity.X, input.MoveX,
			physics.Acceleration.X*secs, physics.Deceleration.X*secs, physics.MaxSpeed.X)
		physics.Velocity.Y = steer(physics.Velocity.Y, input.MoveY,
			physics.Acceleration.Y*secs, physics.Deceleration.Y*secs, physics.MaxSpeed.Y)
	})
}

// steer accelerates speed toward axis*max. A centred axis decelerates.
func steer(speed, axis, accel, decel, max float64) float64 {
	if axis == 0 {
		return gamemath.ApplyDeceleration(speed, decel)
	}
	dir := 1
	if axis < 0 {
		dir = -1
	}
	limit := max * gamemath.Clamp(math.Abs(axis), 0, 1)
	// Slow down when the stick is eased off rather than snapping.
	if math.Abs(speed) > limit && (speed > 0) == (dir > 0) {
		return gamemath.ApplyDeceleration(speed, decel)
	}
	return gamemath.Accelerate(speed, accel, decel, limit, dir)
}

// UpdatePlayerWeapon fires the ship's main attack. The weapon runs in manual
// mode: once ready it stays ready until the player fires, and each shot
// rearms it with a reload time derived from the player's money.
func UpdatePlayerWeapon(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := tickDuration()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		w := components.Weapon.Get(e)

		if !w.Update(dt) {
			return
		}
		if !player.AttackEnabled || !GetAction(input, cfg.ActionBasicAttack).Pressed {
			return
		}

		obj := components.Object.Get(e)
		cx, cy := obj.Center()
		components.SpawnProjectileEvent.Publish(ecs.World, components.SpawnProjectile{
			Owner:    e.Entity(),
			Source:   gamemath.Vec2{X: cx, Y: cy},
			Velocity: components.Physics.Get(e).Velocity,
			Inherit:  player.InheritVelocity,
			Weapon:   *w,
		})
		w.Rearm(gamemath.PlayerFireInterval(player.Money))
	})
}

// getPlayer returns the first live player ship.
func getPlayer(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(ecs.World)
}

package systems

import (
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/behavior"
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMobs steps behaviour sequences and applies movement behaviours.
func UpdateMobs(ecs *ecs.ECS) {
	dt := tickDuration()
	secs := dt.Seconds()
	centerX := arenaCenterX(ecs)

	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		mob := components.Mob.Get(e)
		if mob.Tracker != nil {
			if next, changed := mob.Tracker.Update(mob.Sequence, dt); changed {
				mob.Behaviors = next
			}
		}

		physics := components.Physics.Get(e)
		accel := physics.Acceleration.Scale(secs)
		decel := physics.Deceleration.Scale(secs)
		v := &physics.Velocity

		if mob.Behaviors.Has(behavior.MoveDown) {
			v.Y = gamemath.Accelerate(v.Y, accel.Y, decel.Y, physics.MaxSpeed.Y, 1)
		} else {
			v.Y = gamemath.ApplyDeceleration(v.Y, decel.Y)
		}

		switch {
		case mob.Behaviors.Has(behavior.MoveLeft):
			v.X = gamemath.Accelerate(v.X, accel.X, decel.X, physics.MaxSpeed.X, -1)
		case mob.Behaviors.Has(behavior.MoveRight):
			v.X = gamemath.Accelerate(v.X, accel.X, decel.X, physics.MaxSpeed.X, 1)
		case mob.Behaviors.Has(behavior.MoveToCenter):
			x, _ := components.Object.Get(e).Center()
			dir := 0
			if x < centerX-cfg.Mob.CenterTolerance {
				dir = 1
			} else if x > centerX+cfg.Mob.CenterTolerance {
				dir = -1
			}
			v.X = gamemath.Accelerate(v.X, accel.X, decel.X, physics.MaxSpeed.X, dir)
		case mob.Behaviors.Has(behavior.BrakeHorizontal):
			v.X = gamemath.ApplyDeceleration(v.X, decel.X)
		}
	})
}

// UpdateMobWeapons fires mob weapons while the FireWeapon behaviour is
// active. Mob weapons run in automatic mode and rearm themselves.
func UpdateMobWeapons(ecs *ecs.ECS) {
	dt := tickDuration()

	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Mob) || e.HasComponent(components.Death) {
			return
		}
		mob := components.Mob.Get(e)
		if !mob.Behaviors.Has(behavior.FireWeapon) {
			return
		}

		w := components.Weapon.Get(e)
		if !w.Update(dt) {
			return
		}

		obj := components.Object.Get(e)
		cx, cy := obj.Center()
		components.SpawnProjectileEvent.Publish(ecs.World, components.SpawnProjectile{
			Owner:    e.Entity(),
			Source:   gamemath.Vec2{X: cx, Y: cy},
			Velocity: components.Physics.Get(e).Velocity,
			Weapon:   *w,
		})
	})
}

// UpdateMobSpawners lets carrier mobs launch other mobs while the SpawnMob
// behaviour is active.
func UpdateMobSpawners(ecs *ecs.ECS) {
	dt := tickDuration()

	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		mob := components.Mob.Get(e)
		if mob.Spawner == nil || !mob.Behaviors.Has(behavior.SpawnMob) {
			return
		}

		mob.SpawnTimer.Tick(dt)
		if !mob.SpawnTimer.Finished() {
			return
		}
		mob.SpawnTimer.Reset()

		cx, cy := components.Object.Get(e).Center()
		components.SpawnMobEvent.Publish(ecs.World, components.SpawnMob{
			Type:     mob.Spawner.Mob,
			Position: gamemath.Vec2{X: cx, Y: cy}.Add(mob.Spawner.Offset),
		})
	})
}

func arenaCenterX(ecs *ecs.ECS) float64 {
	if arena, ok := getArena(ecs); ok {
		return float64(arena.Width) / 2
	}
	return float64(cfg.C.Width) / 2
}

package systems

import (
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/logging"
	"github.com/automoto/starwave/shared/timer"
	"github.com/automoto/starwave/systems/factory"
	"github.com/automoto/starwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProcessEvents delivers the spawn requests published this tick.
func ProcessEvents(ecs *ecs.ECS) {
	components.SpawnProjectileEvent.ProcessEvents(ecs.World)
	components.SpawnMobEvent.ProcessEvents(ecs.World)
}

// SubscribeSpawners registers the projectile and mob spawners with the
// world's event queues.
func SubscribeSpawners(ecs *ecs.ECS) {
	components.SpawnProjectileEvent.Subscribe(ecs.World, func(w donburi.World, ev components.SpawnProjectile) {
		spawnProjectiles(ecs, ev)
	})
	components.SpawnMobEvent.Subscribe(ecs.World, func(w donburi.World, ev components.SpawnMob) {
		spawnMob(ecs, ev)
	})
}

// spawnProjectiles creates one volley. A weapon with a capacity never has
// more than that many live projectiles; surplus projectiles of the volley
// are dropped.
func spawnProjectiles(ecs *ecs.ECS, ev components.SpawnProjectile) {
	w := ev.Weapon
	live := 0
	if w.Capacity > 0 {
		live = liveProjectiles(ecs, ev.Owner)
	}
	velocities := w.Volley(live)
	if len(velocities) == 0 {
		logging.L().Debugw("projectile capacity reached", "owner", ev.Owner, "capacity", w.Capacity)
		return
	}

	origin := w.Origin(ev.Source)
	for _, v := range velocities {
		if ev.Inherit {
			v = v.Add(ev.Velocity.Scale(cfg.Player.VelocityInheritance))
		}
		factory.CreateProjectile(ecs, factory.ProjectileSpec{
			Type:     w.Ammunition,
			Owner:    ev.Owner,
			Position: origin,
			Velocity: v,
			Damage:   w.Damage,
			Lifetime: timer.New(w.DespawnTime),
		})
	}
}

func liveProjectiles(ecs *ecs.ECS, owner donburi.Entity) int {
	n := 0
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Owner == owner && !e.HasComponent(components.Death) {
			n++
		}
	})
	return n
}

func spawnMob(ecs *ecs.ECS, ev components.SpawnMob) {
	db, ok := getDatabase(ecs)
	if !ok {
		return
	}
	data, err := db.Mob(ev.Type)
	if err != nil {
		logging.L().Warnw("cannot spawn mob", "error", err)
		return
	}

	mob, err := factory.CreateMob(ecs, ev.Position.X, ev.Position.Y, data, ev.Boss)
	if err != nil {
		logging.L().Warnw("cannot spawn mob", "type", ev.Type, "error", err)
		return
	}

	if ev.Boss {
		if r, ok := getRun(ecs); ok {
			r.Boss = mob.Entity()
			r.HasBoss = true
		}
	}
}

package systems

import (
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/weapon"
	"github.com/automoto/starwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles expires projectiles and resolves their hits. Ally
// projectiles damage mobs, enemy projectiles damage the player, and both
// stop at barriers.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := tickDuration()
	minX, minY, maxX, maxY := despawnBounds(ecs)

	var projectiles []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			projectiles = append(projectiles, e)
		}
	})

	for _, e := range projectiles {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		p.Despawn.Tick(dt)
		if p.Despawn.Finished() || obj.X+obj.W < minX || obj.X > maxX || obj.Y+obj.H < minY || obj.Y > maxY {
			markRemoved(e)
			continue
		}

		targetTag := tags.ResolvPlayer
		if p.Type.Faction == weapon.Ally {
			targetTag = tags.ResolvMob
		}

		check := obj.Check(0, 0, targetTag, tags.ResolvSolid)
		if check == nil {
			continue
		}
		if target := firstLiveTarget(check.ObjectsByTags(targetTag)); target != nil {
			applyDamage(target, p.Damage, p.Owner)
			markRemoved(e)
			continue
		}
		if len(check.ObjectsByTags(tags.ResolvSolid)) > 0 {
			markRemoved(e)
		}
	}
}

func firstLiveTarget(objs []*resolv.Object) *donburi.Entry {
	for _, o := range objs {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.HasComponent(components.Death) {
			continue
		}
		return target
	}
	return nil
}

// despawnBounds is the arena grown by the despawn margin.
func despawnBounds(ecs *ecs.ECS) (minX, minY, maxX, maxY float64) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	if arena, ok := getArena(ecs); ok {
		w, h = float64(arena.Width), float64(arena.Height)
	}
	m := cfg.Arena.DespawnMargin
	return -m, -m, w + m, h + m
}

package systems

import (
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/shared/behavior"
	"github.com/automoto/starwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions handles ship and mob contact, and mobs that get past the
// player to the bottom of the arena.
func UpdateCollisions(ecs *ecs.ECS) {
	player, hasPlayer := getPlayer(ecs)
	if hasPlayer && player.HasComponent(components.Death) {
		hasPlayer = false
	}

	if hasPlayer {
		checkPlayerContact(player)
	}

	_, _, _, maxY := despawnBounds(ecs)
	var mobs []*donburi.Entry
	tags.Mob.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			mobs = append(mobs, e)
		}
	})

	for _, e := range mobs {
		obj := components.Object.Get(e)
		mob := components.Mob.Get(e)

		if check := obj.Check(0, 0, tags.ResolvBottom); check != nil {
			if hasPlayer {
				applyDamage(player, mob.DefenseDamage, e.Entity())
			}
			markRemoved(e)
			continue
		}
		if obj.Y > maxY {
			markRemoved(e)
		}
	}
}

// checkPlayerContact damages the player for touching a mob, then ignores
// further contacts until the cooldown runs out. Mobs that take damage on
// impact are hurt by the same amount.
func checkPlayerContact(player *donburi.Entry) {
	p := components.Player.Get(player)
	if !p.ContactCooldown.Finished() {
		return
	}

	obj := components.Object.Get(player)
	check := obj.Check(0, 0, tags.ResolvMob)
	if check == nil {
		return
	}
	target := firstLiveTarget(check.ObjectsByTags(tags.ResolvMob))
	if target == nil {
		return
	}

	mob := components.Mob.Get(target)
	applyDamage(player, mob.CollisionDamage, target.Entity())
	if mob.Behaviors.Has(behavior.ReceiveDamageOnImpact) {
		applyDamage(target, mob.CollisionDamage, player.Entity())
	}
	p.ContactCooldown.Reset()
}

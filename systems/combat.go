package systems

import (
	"github.com/automoto/starwave/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events and marks entities whose health
// ran out.
func UpdateCombat(ecs *ecs.ECS) {
	var damaged []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		damaged = append(damaged, e)
	}

	for _, e := range damaged {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			hp := components.Health.Get(e)
			hp.Current -= dmg.Amount
			if hp.Current < 0 {
				hp.Current = 0
			}
			if hp.Current == 0 && !e.HasComponent(components.Death) {
				donburi.Add(e, components.Death, &components.DeathData{Killed: true})
			}
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

// applyDamage queues damage on target. Several hits in one tick add up.
func applyDamage(target *donburi.Entry, amount float64, source donburi.Entity) {
	if amount <= 0 || !target.Valid() || target.HasComponent(components.Death) {
		return
	}
	if target.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(target).Amount += amount
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}

// markRemoved queues an entity for removal without rewards.
func markRemoved(e *donburi.Entry) {
	if !e.HasComponent(components.Death) {
		donburi.Add(e, components.Death, &components.DeathData{})
	}
}

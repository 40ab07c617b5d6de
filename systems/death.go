package systems

import (
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes entities marked for death. Killed mobs pay out money
// to the player and score to the run; a dead boss ends the boss phase.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		dead = append(dead, e)
	})

	for _, e := range dead {
		death := components.Death.Get(e)
		if e.HasComponent(components.Mob) {
			handleMobDeath(ecs, e, death.Killed)
		}
		if e.HasComponent(components.Player) {
			logging.L().Infow("player destroyed", "character", components.Player.Get(e).Character)
		}
		removeEntity(ecs, e)
	}
}

func handleMobDeath(ecs *ecs.ECS, e *donburi.Entry, killed bool) {
	mob := components.Mob.Get(e)

	if killed {
		if score, ok := getScore(ecs); ok {
			score.Score += mob.Score
			score.Kills++
		}
		if p, ok := getPlayer(ecs); ok && !p.HasComponent(components.Death) {
			components.Player.Get(p).Money += mob.Money
		}
	}

	if r, ok := getRun(ecs); ok && r.HasBoss && r.Boss == e.Entity() {
		r.HasBoss = false
		r.Tracker.BossDefeated()
		logging.L().Debugw("boss defeated", "type", mob.Type, "killed", killed)
	}
}

func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

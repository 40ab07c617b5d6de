package systems

import (
	"math/rand"

	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/logging"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/leveldata"
	"github.com/automoto/starwave/shared/run"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRun advances the level phases and requests formation and boss
// spawns.
func UpdateRun(ecs *ecs.ECS) {
	entry, ok := components.Run.First(ecs.World)
	if !ok {
		return
	}
	r := components.Run.Get(entry)
	arena, ok := getArena(ecs)
	if !ok {
		return
	}

	for _, ev := range r.Tracker.Update(tickDuration()) {
		switch ev.Kind {
		case run.PhaseStarted:
			phase, _, _ := r.Tracker.Current()
			r.Phase = phase.Name
			startPhaseBanner(components.PhaseBanner.Get(entry), phase.Name)
			logging.L().Debugw("phase started", "run", r.ID, "phase", phase.Name, "kind", phase.Kind.String())
		case run.SpawnMob:
			if len(arena.MobSpawns) == 0 {
				continue
			}
			lane := arena.MobSpawns[rand.Intn(len(arena.MobSpawns))]
			components.SpawnMobEvent.Publish(ecs.World, components.SpawnMob{
				Type:     ev.Mob,
				Position: gamemath.Vec2{X: lane.X, Y: lane.Y},
			})
		case run.SpawnBoss:
			components.SpawnMobEvent.Publish(ecs.World, components.SpawnMob{
				Type:     ev.Mob,
				Position: gamemath.Vec2{X: arena.BossSpawn.X, Y: arena.BossSpawn.Y},
				Boss:     true,
			})
		case run.RunComplete:
			r.Complete = true
			logging.L().Infow("run complete", "run", r.ID, "score", components.Score.Get(entry).Score)
		}
	}
}

func getRun(ecs *ecs.ECS) (*components.RunData, bool) {
	entry, ok := components.Run.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Run.Get(entry), true
}

func getScore(ecs *ecs.ECS) (*components.ScoreData, bool) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Score.Get(entry), true
}

func getArena(ecs *ecs.ECS) (*leveldata.Arena, bool) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Arena.Get(entry), true
}

func getDatabase(ecs *ecs.ECS) (*gamedata.Database, bool) {
	entry, ok := components.Database.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Database.Get(entry), true
}

// IsRunOver reports whether the run ended, either because every phase was
// cleared or because the player's ship was destroyed.
func IsRunOver(ecs *ecs.ECS) (over, victory bool) {
	if r, ok := getRun(ecs); ok && r.Complete {
		return true, true
	}
	if _, ok := getPlayer(ecs); !ok {
		return true, false
	}
	return false, false
}

// RunScore returns the score of the current run.
func RunScore(ecs *ecs.ECS) int {
	if s, ok := getScore(ecs); ok {
		return s.Score
	}
	return 0
}

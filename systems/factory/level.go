package factory

import (
	"github.com/automoto/starwave/archetypes"
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the arena and game data for the systems that spawn
// entities, then builds the arena's barriers.
func CreateLevel(ecs *ecs.ECS, arena *leveldata.Arena, db *gamedata.Database) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Arena.Set(level, arena)
	components.Database.Set(level, db)

	for _, b := range arena.Barriers {
		CreateBarrier(ecs, b)
	}
	return level
}

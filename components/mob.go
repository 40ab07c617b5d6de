package components

import (
	"github.com/automoto/starwave/shared/behavior"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/timer"
	"github.com/yohamta/donburi"
)

type MobData struct {
	Type      string
	Behaviors behavior.Set
	Sequence  behavior.Sequence
	// Tracker is nil for mobs without a behaviour sequence.
	Tracker *behavior.Tracker
	// Spawner is nil for mobs that do not spawn other mobs.
	Spawner    *gamedata.MobSpawner
	SpawnTimer timer.Timer

	CollisionDamage float64
	DefenseDamage   float64
	Money           int
	Score           int
	Boss            bool
}

var Mob = donburi.NewComponentType[MobData]()

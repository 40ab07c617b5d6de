package archetypes

import (
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Health,
		components.Weapon,
		components.Shape,
	)
	Mob = newArchetype(
		tags.Mob,
		components.Mob,
		components.Object,
		components.Physics,
		components.Health,
		components.Shape,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Shape,
	)
	Barrier = newArchetype(
		tags.Barrier,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Arena,
		components.Database,
	)
	Run = newArchetype(
		components.Run,
		components.Score,
		components.PhaseBanner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

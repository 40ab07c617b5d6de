package factory

import (
	"github.com/automoto/starwave/archetypes"
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/timer"
	"github.com/automoto/starwave/shared/weapon"
	"github.com/automoto/starwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileSpec is one projectile of a volley.
type ProjectileSpec struct {
	Type     weapon.ProjectileType
	Owner    donburi.Entity
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Damage   float64
	Lifetime timer.Timer
}

// CreateProjectile spawns a projectile centred on spec.Position.
func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	shape, ok := cfg.Projectile.Shapes[spec.Type.Kind.String()]
	if !ok {
		shape = cfg.ProjectileShape{Width: 4, Height: 4}
	}
	resolvTag := tags.ResolvEnemyProjectile
	color := cfg.Projectile.Enemy
	if spec.Type.Faction == weapon.Ally {
		resolvTag = tags.ResolvAllyProjectile
		color = cfg.Projectile.Ally
	}

	obj := resolv.NewObject(spec.Position.X-shape.Width/2, spec.Position.Y-shape.Height/2, shape.Width, shape.Height, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, shape.Width, shape.Height))
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Type:    spec.Type,
		Damage:  spec.Damage,
		Owner:   spec.Owner,
		Despawn: spec.Lifetime,
	})
	components.Physics.SetValue(projectile, components.PhysicsData{
		Velocity: spec.Velocity,
	})
	components.Shape.SetValue(projectile, components.ShapeData{Color: color})

	addToSpace(ecs, obj)
	return projectile
}

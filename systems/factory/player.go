package factory

import (
	"image/color"

	"github.com/automoto/starwave/archetypes"
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/timer"
	"github.com/automoto/starwave/shared/weapon"
	"github.com/automoto/starwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the character's ship centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, c gamedata.Character) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := c.Collider.X, c.Collider.Y
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	cooldown := timer.FromSeconds(cfg.Player.ContactCooldown)
	cooldown.Tick(cooldown.Duration())
	components.Player.SetValue(player, components.PlayerData{
		Character:       c.Name,
		Money:           c.Money,
		InheritVelocity: c.InheritVelocity,
		ContactCooldown: cooldown,
		AttackEnabled:   true,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Acceleration: gamemath.Vec2{X: c.Acceleration, Y: c.Acceleration},
		Deceleration: gamemath.Vec2{X: c.Deceleration, Y: c.Deceleration},
		MaxSpeed:     gamemath.Vec2{X: c.Speed, Y: c.Speed},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: c.Health,
		Max:     c.Health,
	})
	components.Weapon.Set(player, weapon.NewWeapon(c.Weapon))
	components.Shape.SetValue(player, components.ShapeData{Color: rgba(c.Color)})

	addToSpace(ecs, obj)
	return player
}

func rgba(c gamedata.Color) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

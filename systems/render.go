package systems

import (
	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills the background and draws the arena barriers.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Space)

	tags.Barrier.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Grey, false)
	})
}

// DrawShapes renders every entity with a Shape as a filled rectangle over
// its collider. Mobs flash their health as a thin bar once damaged.
func DrawShapes(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Shape.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		shape := components.Shape.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), shape.Color, false)

		if !e.HasComponent(components.Mob) {
			return
		}
		hp := components.Health.Get(e)
		if hp.Current >= hp.Max {
			return
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y-3), float32(o.W), 2, cfg.HUD.HealthBarBg, false)
		vector.FillRect(screen, float32(o.X), float32(o.Y-3), float32(o.W*hp.Ratio()), 2, cfg.HUD.HealthBarFg, false)
	})
}

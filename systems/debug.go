package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/fonts"
	"github.com/automoto/starwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based fonts
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints entity counts.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvBottom) {
			c = color.RGBA{255, 128, 0, 255} // Orange
		} else if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvMob) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvAllyProjectile) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	var mobs, projectiles int
	tags.Mob.Each(ecs.World, func(*donburi.Entry) { mobs++ })
	tags.Projectile.Each(ecs.World, func(*donburi.Entry) { projectiles++ })
	info := fmt.Sprintf("TPS %.0f  mobs %d  projectiles %d", ebiten.ActualTPS(), mobs, projectiles)
	text.Draw(screen, info, fonts.Small.Get(), 8, screen.Bounds().Dy()-4, color.White)
}

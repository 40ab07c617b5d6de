package systems

import (
	"fmt"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based fonts
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar, money, score and the current
// phase.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	margin := cfg.HUD.Margin
	face := fonts.Small.Get()
	width := screen.Bounds().Dx()

	if playerEntry, ok := getPlayer(ecs); ok {
		hp := components.Health.Get(playerEntry)
		player := components.Player.Get(playerEntry)

		vector.FillRect(screen,
			float32(margin), float32(margin),
			float32(cfg.HUD.HealthBarWidth), float32(cfg.HUD.HealthBarHeight),
			cfg.HUD.HealthBarBg, false)
		vector.FillRect(screen,
			float32(margin), float32(margin),
			float32(cfg.HUD.HealthBarWidth*hp.Ratio()), float32(cfg.HUD.HealthBarHeight),
			cfg.HUD.HealthBarFg, false)

		// Reload bar under the health bar, full while the weapon is ready.
		reloadY := margin + cfg.HUD.HealthBarHeight + 2
		reload := 1.0
		if w := components.Weapon.Get(playerEntry); !w.Ready() {
			reload = w.ReloadTimer.Fraction()
		}
		vector.FillRect(screen,
			float32(margin), float32(reloadY),
			float32(cfg.HUD.HealthBarWidth*reload), float32(cfg.HUD.ReloadBarHeight),
			cfg.HUD.ReloadBarFg, false)

		money := fmt.Sprintf("$%d", player.Money)
		text.Draw(screen, money, face, int(margin), int(reloadY+cfg.HUD.ReloadBarHeight+12), cfg.HUD.TextColor)
	}

	if score, ok := getScore(ecs); ok {
		line := fmt.Sprintf("SCORE %d  BEST %d", score.Score, max(score.Best, score.Score))
		x := width - text.BoundString(face, line).Dx() - int(margin)
		text.Draw(screen, line, face, x, int(margin)+8, cfg.HUD.TextColor)
	}

	if r, ok := getRun(ecs); ok && r.Phase != "" {
		line := r.Phase
		if remaining := r.Tracker.Remaining(); remaining > 0 {
			line = fmt.Sprintf("%s  %ds", r.Phase, int(remaining.Seconds()+0.999))
		}
		x := (width - text.BoundString(face, line).Dx()) / 2
		text.Draw(screen, line, face, x, int(margin)+8, cfg.HUD.TextColor)
	}
}

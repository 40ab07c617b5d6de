package systems

import (
	"image/color"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// startPhaseBanner fades the phase name in, holds it, and fades it out.
func startPhaseBanner(banner *components.PhaseBannerData, name string) {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, cfg.PhaseUI.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.PhaseUI.Hold, ease.Linear),
		gween.New(1, 0, cfg.PhaseUI.FadeOut, ease.InQuad),
	)
	banner.Text = name
	banner.Sequence = seq
	banner.Alpha = 0
}

// UpdatePhaseBanner advances the banner fade.
func UpdatePhaseBanner(ecs *ecs.ECS) {
	entry, ok := components.PhaseBanner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.PhaseBanner.Get(entry)
	if banner.Sequence == nil {
		return
	}

	alpha, _, done := banner.Sequence.Update(float32(tickDuration().Seconds()))
	banner.Alpha = alpha
	if done {
		banner.Sequence = nil
		banner.Alpha = 0
	}
}

// DrawPhaseBanner draws the phase name centred on the screen.
func DrawPhaseBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.PhaseBanner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.PhaseBanner.Get(entry)
	if banner.Alpha <= 0 || banner.Text == "" {
		return
	}

	c := cfg.PhaseUI.Color
	a := float64(banner.Alpha)
	faded := color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}

	drawCentered(screen, banner.Text, fonts.Title, cfg.PhaseUI.Y, faded)
}

package systems

import (
	"image/color"

	"github.com/automoto/starwave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based fonts
)

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, font fonts.FontName, y float64, clr color.Color) {
	face := font.Get()
	x := (screen.Bounds().Dx() - text.BoundString(face, s).Dx()) / 2
	text.Draw(screen, s, face, x, int(y), clr)
}

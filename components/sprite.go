package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeData draws an entity as a filled rectangle over its collider.
type ShapeData struct {
	Color color.RGBA
}

var Shape = donburi.NewComponentType[ShapeData]()

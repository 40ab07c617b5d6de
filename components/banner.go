package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PhaseBannerData fades the current phase name in and out.
type PhaseBannerData struct {
	Text     string
	Sequence *gween.Sequence
	Alpha    float32
}

var PhaseBanner = donburi.NewComponentType[PhaseBannerData]()

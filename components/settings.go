package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that apply to the whole scene.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

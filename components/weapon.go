package components

import (
	"github.com/automoto/starwave/shared/weapon"
	"github.com/yohamta/donburi"
)

// Weapon is the firing state of a ship or mob.
var Weapon = donburi.NewComponentType[weapon.Weapon]()

package components

import (
	"github.com/automoto/starwave/shared/timer"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Character string
	// Money is collected from destroyed mobs and speeds up the fire rate.
	Money           int
	InheritVelocity bool
	// ContactCooldown blocks repeated mob contact damage.
	ContactCooldown timer.Timer
	// AttackEnabled gates the main attack, e.g. during the game over fade.
	AttackEnabled bool
}

var Player = donburi.NewComponentType[PlayerData]()

package components

import "github.com/yohamta/donburi"

// DeathData marks an entity for removal at the end of the tick.
type DeathData struct {
	// Killed is true when health ran out. Mobs leaving the arena or
	// projectiles expiring are removed without rewards.
	Killed bool
}

var Death = donburi.NewComponentType[DeathData]()

package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to an entity that took damage this tick.
// Amounts from several hits in one tick accumulate.
type DamageEventData struct {
	Amount float64
	// Source is the entity credited with the damage, if any.
	Source donburi.Entity
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

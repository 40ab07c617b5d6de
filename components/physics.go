package components

import (
	"github.com/automoto/starwave/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is per-entity motion in px/s. Axis limits are per component so
// mobs can brake horizontally while still drifting down.
type PhysicsData struct {
	Velocity     gamemath.Vec2
	Acceleration gamemath.Vec2
	Deceleration gamemath.Vec2
	MaxSpeed     gamemath.Vec2
}

var Physics = donburi.NewComponentType[PhysicsData]()

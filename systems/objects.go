package systems

import (
	"github.com/automoto/starwave/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs moved objects with the collision space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

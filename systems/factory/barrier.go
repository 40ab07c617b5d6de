package factory

import (
	"github.com/automoto/starwave/archetypes"
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/shared/leveldata"
	"github.com/automoto/starwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBarrier adds an arena edge. Bottom barriers are also tagged so mobs
// reaching them deal defense damage.
func CreateBarrier(ecs *ecs.ECS, b leveldata.Barrier) *donburi.Entry {
	barrier := archetypes.Barrier.Spawn(ecs)

	resolvTags := []string{tags.ResolvSolid}
	if b.Kind == leveldata.BarrierBottom {
		resolvTags = append(resolvTags, tags.ResolvBottom)
	}
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = barrier

	components.Object.SetValue(barrier, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return barrier
}

package factory

import (
	"github.com/automoto/starwave/archetypes"
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/shared/behavior"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/timer"
	"github.com/automoto/starwave/shared/weapon"
	"github.com/automoto/starwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMob spawns a mob of the given type centred on (x, y).
func CreateMob(ecs *ecs.ECS, x, y float64, data gamedata.MobData, boss bool) (*donburi.Entry, error) {
	behaviors := data.Behaviors
	var tracker *behavior.Tracker
	if len(data.Sequence) > 0 {
		t, initial, err := behavior.NewTracker(data.Sequence)
		if err != nil {
			return nil, err
		}
		tracker = t
		behaviors = initial
	}

	var extra []donburi.IComponentType
	if data.Weapon != nil {
		extra = append(extra, components.Weapon)
	}
	mob := archetypes.Mob.Spawn(ecs, extra...)

	w, h := data.Collider.X, data.Collider.Y
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvMob)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = mob
	components.Object.SetValue(mob, components.ObjectData{Object: obj})

	mobData := components.MobData{
		Type:            data.Type,
		Behaviors:       behaviors,
		Sequence:        data.Sequence,
		Tracker:         tracker,
		Spawner:         data.Spawner,
		CollisionDamage: data.CollisionDamage,
		DefenseDamage:   data.DefenseDamage,
		Money:           data.Money,
		Score:           data.Score,
		Boss:            boss,
	}
	if data.Spawner != nil {
		mobData.SpawnTimer = timer.FromSeconds(data.Spawner.Period)
	}
	components.Mob.SetValue(mob, mobData)

	components.Physics.SetValue(mob, components.PhysicsData{
		Acceleration: data.Acceleration,
		Deceleration: data.Deceleration,
		MaxSpeed:     data.Speed,
	})
	components.Health.SetValue(mob, components.HealthData{
		Current: data.Health,
		Max:     data.Health,
	})
	components.Shape.SetValue(mob, components.ShapeData{Color: rgba(data.Color)})
	if data.Weapon != nil {
		components.Weapon.Set(mob, weapon.NewWeapon(*data.Weapon))
	}

	addToSpace(ecs, obj)
	return mob, nil
}

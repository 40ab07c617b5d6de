package factory

import (
	"github.com/automoto/starwave/archetypes"
	"github.com/automoto/starwave/components"
	"github.com/automoto/starwave/shared/run"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun spawns the singleton that tracks phases and score.
func CreateRun(ecs *ecs.ECS, phases []run.Phase, best int) (*donburi.Entry, error) {
	tracker, err := run.NewTracker(phases, nil)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(entry, components.RunData{ID: uuid.NewString(), Tracker: tracker})
	components.Score.SetValue(entry, components.ScoreData{Best: best})
	components.PhaseBanner.SetValue(entry, components.PhaseBannerData{})
	return entry, nil
}

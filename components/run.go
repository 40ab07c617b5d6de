package components

import (
	"github.com/automoto/starwave/shared/run"
	"github.com/yohamta/donburi"
)

// RunData is the singleton state of the current game run.
type RunData struct {
	// ID tags the run's log entries.
	ID      string
	Tracker *run.Tracker
	Phase   string
	// Boss is the live boss entity during a boss phase.
	Boss     donburi.Entity
	HasBoss  bool
	Complete bool
}

var Run = donburi.NewComponentType[RunData]()

package systems

import (
	"encoding/json"

	"github.com/automoto/starwave/logging"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// SavedProgress is the player data stored on disk between sessions.
type SavedProgress struct {
	LastCharacter string `json:"lastCharacter"`
	BestScore     int    `json:"bestScore"`
	Runs          int    `json:"runs"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "starwave",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress loads saved progress. Missing or unreadable data yields the
// zero value; persistence problems never stop the game.
func LoadProgress() SavedProgress {
	var progress SavedProgress
	if gdataManager == nil {
		return progress
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		logging.L().Warnw("could not load progress", "error", err)
		return progress
	}
	if len(data) == 0 {
		return progress
	}

	if err := json.Unmarshal(data, &progress); err != nil {
		logging.L().Warnw("could not parse saved progress", "error", err)
		return SavedProgress{}
	}
	return progress
}

// SaveProgress writes progress to disk.
func SaveProgress(progress SavedProgress) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		logging.L().Warnw("could not save progress", "error", err)
		return err
	}
	return nil
}

// RememberCharacter stores the character picked on the selection screen.
func RememberCharacter(name string) {
	progress := LoadProgress()
	progress.LastCharacter = name
	_ = SaveProgress(progress)
}

// RecordRun stores the result of a finished run and returns the best score
// including it.
func RecordRun(score int) int {
	progress := LoadProgress()
	progress.Runs++
	if score > progress.BestScore {
		progress.BestScore = score
	}
	_ = SaveProgress(progress)
	return progress.BestScore
}

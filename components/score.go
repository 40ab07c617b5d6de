package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Score int
	Kills int
	// Best is the persisted high score at the start of the run.
	Best int
}

var Score = donburi.NewComponentType[ScoreData]()

package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverChangeShip
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption
	Victory        bool
	Score          int
	Best           int
	// Armed is set once the select action has been released, so a
	// button held through the end of a run does not pick an option.
	Armed          bool
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()

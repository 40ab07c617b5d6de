package components

import "github.com/automoto/starwave/shared/gamedata"

// CharacterSelectData stores the character selection screen state
type CharacterSelectData struct {
	Characters []gamedata.Character
	Selected   int
	Confirmed  bool
}

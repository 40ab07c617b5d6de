package systems

import (
	"fmt"

	"github.com/automoto/starwave/components"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/yohamta/donburi/ecs"
)

// InitCharacterSelect lists the playable characters and preselects the
// last one played, if it still exists.
func InitCharacterSelect(sel *components.CharacterSelectData, db *gamedata.Database, last string) {
	sel.Characters = db.Characters
	sel.Selected = 0
	sel.Confirmed = false
	for i, c := range sel.Characters {
		if c.Name == last {
			sel.Selected = i
			break
		}
	}
}

// CycleCharacter moves the selection by dir, wrapping around.
func CycleCharacter(sel *components.CharacterSelectData, dir int) {
	n := len(sel.Characters)
	if n == 0 {
		return
	}
	sel.Selected = ((sel.Selected+dir)%n + n) % n
}

// SelectedCharacter returns the highlighted character.
func SelectedCharacter(sel *components.CharacterSelectData) (gamedata.Character, bool) {
	if sel.Selected < 0 || sel.Selected >= len(sel.Characters) {
		return gamedata.Character{}, false
	}
	return sel.Characters[sel.Selected], true
}

// GetCharacterStats summarises a character for the selection screen.
func GetCharacterStats(c gamedata.Character) string {
	shots := "shot"
	if c.Weapon.Count > 1 {
		shots = "shots"
	}
	return fmt.Sprintf("HP %.0f   Speed %.0f   %d %s x %.0f dmg", c.Health, c.Speed, c.Weapon.Count, shots, c.Weapon.Damage)
}

// NewUpdateCharacterSelect creates a system that lets keyboard and gamepad
// users browse characters. onChange is called after the selection moves.
func NewUpdateCharacterSelect(sel *components.CharacterSelectData, onChange func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionMenuLeft).JustPressed, GetAction(input, cfg.ActionMenuUp).JustPressed:
			CycleCharacter(sel, -1)
			onChange()
		case GetAction(input, cfg.ActionMenuRight).JustPressed, GetAction(input, cfg.ActionMenuDown).JustPressed:
			CycleCharacter(sel, 1)
			onChange()
		case GetAction(input, cfg.ActionMenuSelect).JustPressed:
			sel.Confirmed = true
		}
	}
}

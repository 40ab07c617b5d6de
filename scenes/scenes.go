package scenes

import (
	"github.com/automoto/starwave/assets"
	cfg "github.com/automoto/starwave/config"
	"github.com/automoto/starwave/logging"
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewStartScene returns the first scene of the game: character selection,
// or the arena directly when the menu is skipped.
func NewStartScene(sc SceneChanger) (interface{}, error) {
	if !cfg.Debug.SkipMenu {
		return NewCharacterSelectScene(sc), nil
	}

	db, err := assets.LoadDatabase()
	if err != nil {
		return nil, err
	}

	name := cfg.Debug.Character
	if name == "" {
		name = systems.LoadProgress().LastCharacter
	}
	c, err := db.Character(name)
	if err != nil {
		if len(db.Characters) == 0 {
			return nil, err
		}
		logging.L().Warnw("falling back to the first character", "character", name, "error", err)
		c = db.Characters[0]
	}
	return NewWorldScene(sc, c), nil
}

// worldFactory builds a fresh arena scene for c.
func worldFactory(sc SceneChanger, c gamedata.Character) func() interface{} {
	return func() interface{} {
		return NewWorldScene(sc, c)
	}
}

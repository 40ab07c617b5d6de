package components

import (
	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/leveldata"
	"github.com/yohamta/donburi"
)

// Arena is the loaded arena map.
var Arena = donburi.NewComponentType[leveldata.Arena]()

// Database is the loaded character, mob and phase data.
var Database = donburi.NewComponentType[gamedata.Database]()

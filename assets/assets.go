// Package assets embeds the game's declarative data and arena maps.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/starwave/shared/gamedata"
	"github.com/automoto/starwave/shared/leveldata"
)

const (
	DataDir   = "data"
	InputFile = "data/input.yaml"
	ArenaFile = "levels/arena.tmx"
)

var (
	//go:embed all:data all:levels
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadDatabase loads characters, mobs and phases from the embedded data.
func LoadDatabase() (*gamedata.Database, error) {
	return gamedata.Load(assetFS, DataDir)
}

// LoadArena loads the embedded arena map.
func LoadArena() (*leveldata.Arena, error) {
	return leveldata.LoadArena(assetFS, ArenaFile)
}

// InputBindings returns the raw input binding document.
func InputBindings() ([]byte, error) {
	return fs.ReadFile(assetFS, InputFile)
}

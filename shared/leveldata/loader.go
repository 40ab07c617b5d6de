package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

var ErrNoPlayerSpawn = errors.New("arena has no player spawn")

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	bossSet := false

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				arena.PlayerSpawn = append(arena.PlayerSpawn, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "MobSpawn":
			for _, o := range og.Objects {
				sp := SpawnPoint{X: o.X, Y: o.Y}
				if o.Properties.GetBool("boss") {
					arena.BossSpawn = sp
					bossSet = true
					continue
				}
				arena.MobSpawns = append(arena.MobSpawns, sp)
			}
		case "Barrier":
			for _, o := range og.Objects {
				kind := BarrierKind(o.Properties.GetString("kind"))
				if kind == "" {
					kind = BarrierSide
				}
				arena.Barriers = append(arena.Barriers, Barrier{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
					Kind: kind,
				})
			}
		}
	}

	if len(arena.PlayerSpawn) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	sort.Slice(arena.PlayerSpawn, func(i, j int) bool {
		return arena.PlayerSpawn[i].Index < arena.PlayerSpawn[j].Index
	})
	// Sort lanes left-to-right for consistent assignment
	sort.Slice(arena.MobSpawns, func(i, j int) bool {
		return arena.MobSpawns[i].X < arena.MobSpawns[j].X
	})
	for i := range arena.MobSpawns {
		arena.MobSpawns[i].Index = i
	}
	if !bossSet {
		arena.BossSpawn = SpawnPoint{X: float64(arena.Width) / 2, Y: 0}
	}

	return arena, nil
}

// Package leveldata provides TMX arena parsing. It has no dependencies on
// ebitengine, donburi, or resolv. Pure data only.
package leveldata

// Arena holds everything the world scene needs from an arena TMX file.
type Arena struct {
	Width       int
	Height      int
	PlayerSpawn []SpawnPoint
	MobSpawns   []SpawnPoint
	BossSpawn   SpawnPoint
	Barriers    []Barrier
}

// SpawnPoint is a location entities appear at.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// BarrierKind distinguishes arena walls from the defended bottom edge.
type BarrierKind string

const (
	BarrierSide   BarrierKind = "side"
	BarrierBottom BarrierKind = "bottom"
)

// Barrier is a solid rectangle bounding the arena.
type Barrier struct {
	X, Y, W, H float64
	Kind       BarrierKind
}

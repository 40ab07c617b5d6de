// Package weapon implements timer-driven fire control shared by players and
// mobs. A Weapon only answers "may this fire now"; spawning projectiles is up
// to the caller.
package weapon

import (
	"time"

	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/timer"
)

// Weapon is the live state built from a WeaponData when the owning entity
// spawns. It is owned by exactly one entity and updated once per tick.
type Weapon struct {
	Ammunition    ProjectileType
	Damage        float64
	Position      SpawnPosition
	Speed         float64
	Direction     float64 // radians
	DespawnTime   time.Duration
	Count         int
	SpreadWeights gamemath.Vec2
	FireMode      FireMode
	Capacity      int
	MaxSpreadArc  float64 // radians
	ProjectileGap float64 // radians

	// ReloadTimer gates successive shots.
	ReloadTimer timer.Timer
	// InitialTimer gates the first shot after creation.
	InitialTimer timer.Timer
}

// NewWeapon converts configuration into live weapon state. Both timers start
// as one-shot countdowns from the configured durations.
func NewWeapon(data WeaponData) *Weapon {
	return &Weapon{
		Ammunition:    data.Ammunition,
		Damage:        data.Damage,
		Position:      data.Position,
		Speed:         data.Speed,
		Direction:     data.Direction,
		DespawnTime:   timer.Seconds(data.DespawnTime),
		Count:         data.Count,
		SpreadWeights: data.SpreadWeights,
		FireMode:      data.FireMode,
		Capacity:      data.Capacity,
		MaxSpreadArc:  data.MaxSpreadArc,
		ProjectileGap: data.ProjectileGap,
		ReloadTimer:   timer.FromSeconds(data.ReloadTime),
		InitialTimer:  timer.FromSeconds(data.InitialTime),
	}
}

// Update advances the weapon's timers by dt and reports whether it may fire.
//
// While the initial delay is running only the initial timer advances and the
// result is always false. Afterwards the reload timer advances; when it has
// finished the result is true, and in Automatic mode the timer is reset right
// away so the next countdown starts immediately. In Manual mode the timer
// stays finished until the caller resets it.
func (w *Weapon) Update(dt time.Duration) bool {
	if !w.InitialTimer.Finished() {
		w.InitialTimer.Tick(dt)
		return false
	}

	w.ReloadTimer.Tick(dt)
	if !w.ReloadTimer.Finished() {
		return false
	}
	if w.FireMode == Automatic {
		w.ReloadTimer.Reset()
	}
	return true
}

// Ready reports whether the weapon is past its initial delay and its reload
// timer is finished, without advancing anything.
func (w *Weapon) Ready() bool {
	return w.InitialTimer.Finished() && w.ReloadTimer.Finished()
}

// ResetReload restarts the reload countdown with its current duration.
func (w *Weapon) ResetReload() {
	w.ReloadTimer.Reset()
}

// Rearm sets a new reload duration and restarts the countdown. Callers with
// their own fire-rate policy use it after consuming a ready state.
func (w *Weapon) Rearm(reload time.Duration) {
	w.ReloadTimer.SetDuration(reload)
	w.ReloadTimer.Reset()
}

// Velocities returns the velocity of every projectile in one burst.
func (w *Weapon) Velocities() []gamemath.Vec2 {
	return gamemath.SpreadVelocities(w.Speed, w.Direction, w.Count, w.MaxSpreadArc, w.ProjectileGap, w.SpreadWeights)
}

// Volley returns the velocities of the projectiles one shot may spawn when
// live projectiles fired by this weapon are still in flight. With a capacity
// the burst is cut to the free slots, and a full weapon yields nil.
func (w *Weapon) Volley(live int) []gamemath.Vec2 {
	velocities := w.Velocities()
	if w.Capacity <= 0 {
		return velocities
	}
	free := w.Capacity - live
	if free <= 0 {
		return nil
	}
	if free < len(velocities) {
		velocities = velocities[:free]
	}
	return velocities
}

// Origin resolves the spawn point for a shot fired by an entity at source.
func (w *Weapon) Origin(source gamemath.Vec2) gamemath.Vec2 {
	if w.Position.Mode == Global {
		return w.Position.Offset
	}
	return source.Add(w.Position.Offset)
}

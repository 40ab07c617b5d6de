package weapon

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/starwave/shared/gamemath"
	"github.com/automoto/starwave/shared/timer"
)

func secs(s float64) time.Duration {
	return timer.Seconds(s)
}

func newTestWeapon(initial, reload float64, mode FireMode) *Weapon {
	return NewWeapon(WeaponData{
		InitialTime:   initial,
		ReloadTime:    reload,
		FireMode:      mode,
		Count:         1,
		Speed:         100,
		SpreadWeights: gamemath.Vec2{X: 1, Y: 1},
	})
}

func runTicks(w *Weapon, deltas ...float64) []bool {
	out := make([]bool, len(deltas))
	for i, d := range deltas {
		out[i] = w.Update(secs(d))
	}
	return out
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewWeaponCopiesData(t *testing.T) {
	data := WeaponData{
		Ammunition:    ProjectileType{Kind: Bullet, Faction: Enemy},
		Damage:        7,
		Position:      SpawnPosition{Mode: Global, Offset: gamemath.Vec2{X: 3, Y: 4}},
		ReloadTime:    1.5,
		InitialTime:   0.25,
		Speed:         200,
		Direction:     math.Pi,
		DespawnTime:   3,
		Count:         5,
		SpreadWeights: gamemath.Vec2{X: 0.5, Y: 1},
		FireMode:      Manual,
		Capacity:      12,
		MaxSpreadArc:  1.2,
		ProjectileGap: 0.1,
	}
	w := NewWeapon(data)

	if w.Ammunition != data.Ammunition || w.Damage != 7 || w.Position != data.Position {
		t.Errorf("identity fields not copied: %+v", w)
	}
	if w.Speed != 200 || w.Direction != math.Pi || w.Count != 5 || w.Capacity != 12 {
		t.Errorf("numeric fields not copied: %+v", w)
	}
	if w.SpreadWeights != data.SpreadWeights || w.MaxSpreadArc != 1.2 || w.ProjectileGap != 0.1 {
		t.Errorf("spread fields not copied: %+v", w)
	}
	if w.FireMode != Manual {
		t.Errorf("expected manual fire mode, got %v", w.FireMode)
	}
	if w.DespawnTime != 3*time.Second {
		t.Errorf("expected 3s despawn time, got %v", w.DespawnTime)
	}
	if w.ReloadTimer.Duration() != 1500*time.Millisecond || w.ReloadTimer.Finished() {
		t.Errorf("reload timer not initialised: %+v", w.ReloadTimer)
	}
	if w.InitialTimer.Duration() != 250*time.Millisecond || w.InitialTimer.Finished() {
		t.Errorf("initial timer not initialised: %+v", w.InitialTimer)
	}
}

func TestUpdateNeverFiresDuringInitialDelay(t *testing.T) {
	for _, mode := range []FireMode{Automatic, Manual} {
		t.Run(mode.String(), func(t *testing.T) {
			// Reload of zero would fire on every tick if the initial delay
			// did not gate it.
			w := newTestWeapon(1.0, 0, mode)
			var total time.Duration
			for total+100*time.Millisecond < time.Second {
				if w.Update(100 * time.Millisecond) {
					t.Fatalf("fired at cumulative %v, before the initial delay", total)
				}
				total += 100 * time.Millisecond
			}
		})
	}
}

func TestUpdateCrossingInitialDelayReturnsFalse(t *testing.T) {
	w := newTestWeapon(0.5, 0, Automatic)
	if w.Update(secs(10)) {
		t.Fatal("the tick that finishes the initial delay must not fire")
	}
	if w.ReloadTimer.Elapsed() != 0 {
		t.Errorf("reload timer advanced on the same tick as the initial timer: %v", w.ReloadTimer.Elapsed())
	}
	if !w.Update(0) {
		t.Fatal("zero reload should fire on the following tick")
	}
}

func TestInitialDelayIsNeverReentered(t *testing.T) {
	w := newTestWeapon(1.0, 1.0, Manual)
	w.Update(secs(1))
	if !w.InitialTimer.Finished() {
		t.Fatal("initial delay should be over")
	}

	w.Update(secs(1))
	w.ResetReload()
	w.Rearm(secs(3))
	for i := 0; i < 10; i++ {
		w.Update(secs(5))
		if !w.InitialTimer.Finished() {
			t.Fatalf("tick %d: weapon re-entered the initial delay", i)
		}
	}
}

func TestAutomaticScenario(t *testing.T) {
	w := newTestWeapon(2.0, 1.0, Automatic)
	got := runTicks(w, 1.0, 1.0, 1.0, 1.0)
	// Tick 2 finishes the initial delay; from tick 3 on each 1s tick spans a
	// whole reload period.
	want := []bool{false, false, true, true}
	if !equalBools(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAutomaticBoundaryJustShort(t *testing.T) {
	w := newTestWeapon(2.0, 1.0, Automatic)
	got := runTicks(w, 1.0, 0.999, 0.001, 0.999, 0.001, 0.5)
	// 1.999s leaves the initial delay running; the 0.001 tick finishes it.
	want := []bool{false, false, false, false, true, false}
	if !equalBools(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAutomaticResetsOnTheFiringTick(t *testing.T) {
	w := newTestWeapon(0, 1.0, Automatic)
	if !w.Update(secs(1)) {
		t.Fatal("expected fire when the reload countdown reaches zero")
	}
	if w.ReloadTimer.Finished() || w.ReloadTimer.Elapsed() != 0 {
		t.Fatalf("automatic weapon should re-arm immediately: %+v", w.ReloadTimer)
	}
	if w.Update(0) {
		t.Fatal("a zero-length tick right after firing must not fire again")
	}
}

func TestAutomaticIsPeriodic(t *testing.T) {
	w := newTestWeapon(0, 0.5, Automatic)
	fired := 0
	for i := 1; i <= 40; i++ {
		ok := w.Update(100 * time.Millisecond)
		if ok != (i%5 == 0) {
			t.Fatalf("tick %d: got %v", i, ok)
		}
		if ok {
			fired++
		}
	}
	if fired != 8 {
		t.Errorf("expected 8 shots in 4s at 0.5s period, got %d", fired)
	}
}

func TestManualScenario(t *testing.T) {
	w := newTestWeapon(0, 0.5, Manual)

	if !w.Update(secs(0.5)) {
		t.Fatal("first update(0.5) should fire")
	}
	if !w.Update(secs(0.5)) {
		t.Fatal("manual weapon should stay ready without an external reset")
	}

	w.ResetReload()
	if w.Update(secs(0.4)) {
		t.Fatal("update(0.4) after reset should not fire")
	}
	if !w.Update(secs(0.1)) {
		t.Fatal("update(0.1) should complete the 0.5s reload")
	}
}

func TestManualStaysReady(t *testing.T) {
	w := newTestWeapon(0, 0.2, Manual)
	w.Update(secs(0.2))
	for i := 0; i < 20; i++ {
		if !w.Update(0) {
			t.Fatalf("tick %d: manual weapon lost its ready state", i)
		}
		if !w.Ready() {
			t.Fatalf("tick %d: Ready disagrees with Update", i)
		}
	}
}

func TestRearmReconfiguresReload(t *testing.T) {
	w := newTestWeapon(0, 1.0, Manual)
	w.Update(secs(1))

	w.Rearm(secs(0.25))
	if w.ReloadTimer.Duration() != 250*time.Millisecond {
		t.Fatalf("expected 250ms reload, got %v", w.ReloadTimer.Duration())
	}
	got := runTicks(w, 0.1, 0.1, 0.05)
	want := []bool{false, false, true}
	if !equalBools(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOrigin(t *testing.T) {
	w := newTestWeapon(0, 1, Automatic)
	source := gamemath.Vec2{X: 10, Y: 20}

	w.Position = SpawnPosition{Mode: Local, Offset: gamemath.Vec2{X: 1, Y: -2}}
	if got := w.Origin(source); got != (gamemath.Vec2{X: 11, Y: 18}) {
		t.Errorf("local origin: got %+v", got)
	}

	w.Position = SpawnPosition{Mode: Global, Offset: gamemath.Vec2{X: 100, Y: 5}}
	if got := w.Origin(source); got != (gamemath.Vec2{X: 100, Y: 5}) {
		t.Errorf("global origin: got %+v", got)
	}
}

func TestVelocitiesUsesBurstGeometry(t *testing.T) {
	w := newTestWeapon(0, 1, Automatic)
	w.Count = 3
	w.ProjectileGap = 0.2
	w.MaxSpreadArc = 1
	if got := len(w.Velocities()); got != 3 {
		t.Errorf("expected 3 velocities, got %d", got)
	}
}

func TestVolleyHonoursCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		live     int
		want     int
	}{
		{"empty", 5, 0, 3},
		{"count above free slots", 5, 3, 2},
		{"one slot left", 5, 4, 1},
		{"full", 5, 5, 0},
		{"over capacity", 5, 7, 0},
		{"unlimited", 0, 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWeapon(0, 1, Automatic)
			w.Count = 3
			w.ProjectileGap = 0.2
			w.MaxSpreadArc = 1
			w.Capacity = tt.capacity

			got := w.Volley(tt.live)
			if len(got) != tt.want {
				t.Fatalf("expected %d projectiles, got %d", tt.want, len(got))
			}
			full := w.Velocities()
			for i := range got {
				if got[i] != full[i] {
					t.Errorf("projectile %d: got %+v, want %+v", i, got[i], full[i])
				}
			}
		})
	}
}

// ticksUntilReady fires a ready manual weapon the way the player does and
// counts 1ms ticks until it is ready again.
func ticksUntilReady(t *testing.T, money int) time.Duration {
	t.Helper()
	w := newTestWeapon(0, 0.5, Manual)
	if !w.Update(secs(0.5)) {
		t.Fatal("weapon should be ready before the first shot")
	}

	interval := gamemath.PlayerFireInterval(money)
	w.Rearm(interval)

	var gap time.Duration
	for i := 0; i < 5000; i++ {
		gap += time.Millisecond
		if w.Update(time.Millisecond) {
			if gap < interval || gap >= interval+time.Millisecond {
				t.Fatalf("money %d: ready after %v, interval %v", money, gap, interval)
			}
			return gap
		}
		if w.Ready() {
			t.Fatalf("money %d: Ready true while Update reported false", money)
		}
	}
	t.Fatalf("money %d: weapon never became ready", money)
	return 0
}

func TestPlayerFireLoopRearmsFromMoney(t *testing.T) {
	poor := ticksUntilReady(t, 0)
	rich := ticksUntilReady(t, 50)
	if rich >= poor {
		t.Errorf("more money should fire faster: %v with 50, %v with 0", rich, poor)
	}
}

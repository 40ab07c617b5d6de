package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// tickDuration is the simulated time covered by one Update call.
func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

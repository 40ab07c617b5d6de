package gamemath

import (
	"math"
	"time"
)

// PlayerFireInterval is the time between player shots for the given money
// stat. It shrinks as money grows: 1 / (1.5 * ln(0.8*money + 4)) seconds.
func PlayerFireInterval(money int) time.Duration {
	if money < 0 {
		money = 0
	}
	secs := 1.0 / (1.5 * math.Log(0.8*float64(money)+4.0))
	return time.Duration(secs * float64(time.Second))
}

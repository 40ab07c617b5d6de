package gamemath

import "math"

// SpreadArc returns the total arc (radians) a burst of count projectiles
// covers: the target gap between neighbours, capped at maxArc.
func SpreadArc(count int, maxArc, gap float64) float64 {
	if count <= 1 {
		return 0
	}
	arc := gap * float64(count-1)
	if maxArc >= 0 && arc > maxArc {
		arc = maxArc
	}
	return math.Max(arc, 0)
}

// SpreadVelocities returns one velocity per projectile in a burst. The
// projectiles are fanned evenly across SpreadArc, centred on direction, and
// each velocity is scaled per axis by weights.
func SpreadVelocities(speed, direction float64, count int, maxArc, gap float64, weights Vec2) []Vec2 {
	if count <= 0 {
		return nil
	}

	out := make([]Vec2, count)
	if count == 1 {
		out[0] = FromAngle(direction).Scale(speed).Mul(weights)
		return out
	}

	arc := SpreadArc(count, maxArc, gap)
	step := arc / float64(count-1)
	start := direction - arc/2
	for i := range out {
		out[i] = FromAngle(start + step*float64(i)).Scale(speed).Mul(weights)
	}
	return out
}

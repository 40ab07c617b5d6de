package gamemath

// ApplyDeceleration reduces speed toward zero by decel without crossing it.
func ApplyDeceleration(speed, decel float64) float64 {
	if speed > decel {
		return speed - decel
	}
	if speed < -decel {
		return speed + decel
	}
	return 0
}

// Accelerate moves speed by accel in direction dir (-1, 0 or 1) and clamps
// the result to [-max, max]. A zero direction decelerates instead.
func Accelerate(speed, accel, decel, max float64, dir int) float64 {
	if dir == 0 {
		return ApplyDeceleration(speed, decel)
	}
	return ClampSpeed(speed+accel*float64(dir), max)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

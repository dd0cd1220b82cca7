package guard

import "math"

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// HeadingTo returns the angle in radians from (ox,oy) toward (tx,ty).
func HeadingTo(ox, oy, tx, ty float64) float64 {
	return math.Atan2(ty-oy, tx-ox)
}

// turnToward rotates heading toward a target angle, limited to rate radians.
func turnToward(heading, target, rate float64) float64 {
	diff := normalizeAngle(target - heading)
	if math.Abs(diff) <= rate {
		return target
	}
	if diff > 0 {
		return normalizeAngle(heading + rate)
	}
	return normalizeAngle(heading - rate)
}

func dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rect is an axis-aligned obstacle footprint in world pixels.
type rect struct {
	x, y, w, h int
}

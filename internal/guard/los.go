package guard

import "math"

// RaycastBlocked reports whether the straight line from (ax,ay) to (bx,by)
// is interrupted by an obstacle within maxDistance. Uses ray-vs-AABB slab
// tests against the building set.
func RaycastBlocked(ax, ay, bx, by, maxDistance float64, buildings []rect) bool {
	total := dist(ax, ay, bx, by)
	if total < 1e-9 {
		return false
	}
	limit := 1.0
	if maxDistance > 0 && maxDistance < total {
		limit = maxDistance / total
	}
	for _, b := range buildings {
		t, hit := rayAABBHitT(ax, ay, bx, by,
			float64(b.x), float64(b.y),
			float64(b.x+b.w), float64(b.y+b.h))
		if hit && t <= limit {
			return true
		}
	}
	return false
}

// HasLineOfSight is the unclipped complement of RaycastBlocked.
func HasLineOfSight(ax, ay, bx, by float64, buildings []rect) bool {
	return !RaycastBlocked(ax, ay, bx, by, 0, buildings)
}

// rayAABBHitT returns the first segment parameter t in [0,1] where the line
// from (ox,oy)->(ex,ey) enters the AABB. The bool is false when no hit exists.
func rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY float64) (float64, bool) {
	dx := ex - ox
	dy := ey - oy

	tMin := 0.0
	tMax := 1.0

	// X slab
	if math.Abs(dx) < 1e-12 {
		if ox < minX || ox > maxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (minX - ox) * invD
		t2 := (maxX - ox) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Y slab
	if math.Abs(dy) < 1e-12 {
		if oy < minY || oy > maxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (minY - oy) * invD
		t2 := (maxY - oy) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	if tMin < 0 {
		tMin = 0
	}
	return tMin, true
}

package guard

import "fmt"

const (
	trailSampleInterval = 0.5 // seconds between trail samples
	trailCap            = 5

	predictionHorizon = 1.0  // seconds of extrapolation
	pursuitSnapRadius = 48.0 // navmesh snap search radius

	flankChancePerTick = 0.02
	flankOffsetDist    = 90.0
	flankMinGain       = 8.0 // ignore flanks that barely differ from direct

	formationDistance = 48.0
)

// updateChase runs the Chase state: pursue the target while visible, hold
// on the last known position when not, and only give up after both the
// lose timer and the persistent-chase grace have fully elapsed.
func (g *Guard) updateChase(w *World, dt float64) {
	g.nav.SetSpeed(g.params.ChaseSpeed)
	g.nav.Resume()
	if g.params.FlashlightEquipped {
		g.flashlightOn = true
	}
	g.persistentChaseTimer += dt

	t := w.Target
	var destX, destY float64
	if g.seesTarget && t != nil {
		g.lostTimer = 0
		g.sampleTrail(t, dt)
		destX, destY = g.pursuitDestination(w, t)

		if dist(g.x, g.y, t.X, t.Y) <= g.params.AttackRange {
			g.setState(w, StateAttack)
			return
		}
	} else {
		g.lostTimer += dt
		if g.lostTimer >= g.params.TimeToLosePlayer &&
			g.persistentChaseTimer >= g.params.PersistentChaseTime {
			w.log(g, "vision", "target_lost", fmt.Sprintf("after %.1fs", g.lostTimer), g.lostTimer)
			g.enterAlert(w, g.lastKnownX, g.lastKnownY, false)
			return
		}
		destX, destY = g.lastKnownX, g.lastKnownY
	}

	destX, destY = g.applyGuardAvoidance(w, destX, destY)
	g.nav.SetDestination(destX, destY)
	// Flashlight and eyes track the pursuit point even while turning.
	g.heading = turnToward(g.heading, HeadingTo(g.x, g.y, destX, destY), guardTurnRate)
}

// sampleTrail records the target's position at a fixed interval, capped to
// the last few samples, for velocity extrapolation.
func (g *Guard) sampleTrail(t *Target, dt float64) {
	g.trailTimer += dt
	if g.trailTimer < trailSampleInterval {
		return
	}
	g.trailTimer = 0
	g.trail = append(g.trail, [2]float64{t.X, t.Y})
	if len(g.trail) > trailCap {
		g.trail = g.trail[len(g.trail)-trailCap:]
	}
}

// pursuitDestination turns the raw target position into a chase point:
// predicted ahead of a moving target, optionally offset to a flank.
func (g *Guard) pursuitDestination(w *World, t *Target) (float64, float64) {
	destX, destY := t.X, t.Y

	// Prediction: aim where the target is heading, not where it is.
	if t.Speed() > walkSpeedThreshold && len(g.trail) >= 2 {
		a := g.trail[len(g.trail)-2]
		b := g.trail[len(g.trail)-1]
		vx := (b[0] - a[0]) / trailSampleInterval
		vy := (b[1] - a[1]) / trailSampleInterval
		px := t.X + vx*predictionHorizon
		py := t.Y + vy*predictionHorizon
		if sx, sy, ok := w.Grid.SamplePosition(px, py, pursuitSnapRadius); ok {
			destX, destY = sx, sy
		}
	}

	// Flanking: with several pursuers on the net, occasionally swing wide
	// to approach from the side instead of stacking up behind.
	if w.rng.Float64() < flankChancePerTick {
		peers := w.Index.QueryRadius(g.x, g.y, g.params.CommunicationRange, KindGuard)
		if len(peers) >= 3 { // self plus two others
			if fx, fy, ok := g.flankPoint(w, destX, destY); ok {
				destX, destY = fx, fy
				w.log(g, "pursuit", "flank", fmt.Sprintf("(%.0f,%.0f)", fx, fy), 0)
			}
		}
	}
	return destX, destY
}

// flankPoint tries a perpendicular offset on both sides of the approach
// vector and picks the nearer navigable one, if it differs meaningfully
// from the direct approach.
func (g *Guard) flankPoint(w *World, tx, ty float64) (float64, float64, bool) {
	d := dist(g.x, g.y, tx, ty)
	if d < 1e-6 {
		return 0, 0, false
	}
	dirX := (tx - g.x) / d
	dirY := (ty - g.y) / d
	perpX, perpY := -dirY, dirX

	bestX, bestY := 0.0, 0.0
	bestD := -1.0
	for _, side := range []float64{1, -1} {
		cx := tx + perpX*flankOffsetDist*side
		cy := ty + perpY*flankOffsetDist*side
		sx, sy, ok := w.Grid.SamplePosition(cx, cy, pursuitSnapRadius)
		if !ok {
			continue
		}
		sd := dist(g.x, g.y, sx, sy)
		if bestD < 0 || sd < bestD {
			bestX, bestY, bestD = sx, sy, sd
		}
	}
	if bestD < 0 || dist(bestX, bestY, tx, ty) < flankMinGain {
		return 0, 0, false
	}
	return bestX, bestY, true
}

// applyGuardAvoidance repels the destination away from other chasing
// guards so the pack spreads instead of converging on one point.
func (g *Guard) applyGuardAvoidance(w *World, destX, destY float64) (float64, float64) {
	var pushX, pushY float64
	n := 0
	for _, e := range w.Index.QueryRadius(g.x, g.y, 2*formationDistance, KindGuard) {
		other, ok := e.(*Guard)
		if !ok || other == g || other.state != StateChase {
			continue
		}
		d := dist(g.x, g.y, other.x, other.y)
		if d >= formationDistance || d < 1e-6 {
			continue
		}
		weight := formationDistance - d
		pushX += (g.x - other.x) / d * weight
		pushY += (g.y - other.y) / d * weight
		n++
	}
	if n == 0 {
		return destX, destY
	}
	adjX := destX + pushX/float64(n)
	adjY := destY + pushY/float64(n)
	if sx, sy, ok := w.Grid.SamplePosition(adjX, adjY, pursuitSnapRadius); ok {
		return sx, sy
	}
	return destX, destY
}

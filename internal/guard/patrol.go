package guard

import "fmt"

const (
	waypointArriveDist = 6.0
	waypointWaitMin    = 1.0 // seconds
	waypointWaitMax    = 3.0

	// Wary guards occasionally stop and sweep their surroundings.
	scanChancePerTick = 0.01
	scanDuration      = 1.5
	scanTurnRate      = 0.05 // radians per tick while sweeping

	flashlightOffBelow = 0.3
	flashlightOnAbove  = 0.5
)

// updatePatrol runs the Patrol state: suspicion-scaled walking pace,
// flashlight hygiene, and random scan pauses when wary.
func (g *Guard) updatePatrol(w *World, dt float64) {
	// Flashlight follows wariness.
	if g.params.FlashlightEquipped {
		if g.flashlightOn && g.suspicion < flashlightOffBelow {
			g.flashlightOn = false
		} else if !g.flashlightOn && g.suspicion > flashlightOnAbove {
			g.flashlightOn = true
		}
	}

	if g.scanTimer > 0 {
		g.scanTimer -= dt
		g.nav.Stop()
		g.heading = normalizeAngle(g.heading + scanTurnRate)
		if g.scanTimer <= 0 {
			g.nav.Resume()
		}
		return
	}
	if !g.seesTarget && g.suspicion > 0.5 && w.rng.Float64() < scanChancePerTick {
		g.scanTimer = scanDuration
		g.think(w, "pausing to scan")
		return
	}

	g.updatePatrolMovement(w, dt)
}

// updatePatrolMovement advances along the waypoint loop with bounce
// indexing: the route reverses at either end instead of wrapping. Also used
// verbatim by the hypnosis overlay, which keeps walking but stops sensing.
func (g *Guard) updatePatrolMovement(w *World, dt float64) {
	if len(g.waypoints) == 0 {
		g.nav.Stop()
		return
	}
	g.nav.SetSpeed(g.params.PatrolSpeed * (1 + 0.5*g.suspicion))

	if g.waiting {
		g.nav.Stop()
		g.waitTimer -= dt
		if g.waitTimer > 0 {
			return
		}
		g.waiting = false
		g.nav.Resume()
		g.advanceWaypoint(w)
		return
	}

	wp := g.waypoints[g.waypointIndex]
	g.nav.SetDestination(wp[0], wp[1])
	if g.nav.RemainingDistance() < waypointArriveDist {
		g.waiting = true
		g.waitTimer = waypointWaitMin + w.rng.Float64()*(waypointWaitMax-waypointWaitMin)
		w.log(g, "patrol", "waypoint_reached", fmt.Sprintf("#%d", g.waypointIndex), 0)
	}
}

// advanceWaypoint moves the cursor one step, bouncing at the ends.
func (g *Guard) advanceWaypoint(w *World) {
	n := len(g.waypoints)
	if n < 2 {
		return
	}
	if g.patrolForward {
		if g.waypointIndex >= n-1 {
			g.patrolForward = false
			g.waypointIndex--
		} else {
			g.waypointIndex++
		}
	} else {
		if g.waypointIndex <= 0 {
			g.patrolForward = true
			g.waypointIndex++
		} else {
			g.waypointIndex--
		}
	}
	wp := g.waypoints[g.waypointIndex]
	g.nav.SetDestination(wp[0], wp[1])
}

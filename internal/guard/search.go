package guard

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	searchPointCount   = 6
	searchRingRadius   = 80.0
	searchSnapRadius   = 48.0
	searchArriveDist   = 8.0
	searchSpeedFactor  = 1.0  // search moves at full chase speed
	searchCommChance   = 0.01 // per-tick chance to ping peers mid-search
	alertSpeedFactor   = 0.75 // alert sweeps are brisk but not flat out
)

// SearchPattern is a ring of candidate points around a location, visited
// sequentially and regenerated per investigation.
type SearchPattern struct {
	CenterX, CenterY float64
	Points           [][2]float64
	Index            int
}

// generateSearchPattern places ring offsets around (cx,cy), snapping each
// to the nav grid and falling back to the center for unreachable offsets.
func generateSearchPattern(grid *NavGrid, cx, cy, radius float64, count int, rng *rand.Rand) *SearchPattern {
	if count <= 0 {
		count = searchPointCount
	}
	start := 0.0
	if rng != nil {
		start = rng.Float64() * 2 * math.Pi
	}
	sp := &SearchPattern{CenterX: cx, CenterY: cy}
	for i := 0; i < count; i++ {
		a := start + float64(i)*2*math.Pi/float64(count)
		px := cx + math.Cos(a)*radius
		py := cy + math.Sin(a)*radius
		if sx, sy, ok := grid.SamplePosition(px, py, searchSnapRadius); ok {
			sp.Points = append(sp.Points, [2]float64{sx, sy})
		} else {
			sp.Points = append(sp.Points, [2]float64{cx, cy})
		}
	}
	return sp
}

// Current returns the active point, or false when the pattern is exhausted.
func (sp *SearchPattern) Current() (float64, float64, bool) {
	if sp == nil || sp.Index >= len(sp.Points) {
		return 0, 0, false
	}
	return sp.Points[sp.Index][0], sp.Points[sp.Index][1], true
}

// Advance moves to the next point.
func (sp *SearchPattern) Advance() {
	if sp != nil {
		sp.Index++
	}
}

// Done reports whether all points have been visited.
func (sp *SearchPattern) Done() bool {
	return sp == nil || sp.Index >= len(sp.Points)
}

// updateAlert runs the Alert state: sweep a ring around the last known
// position (or walk to a heard noise), scanning at each stop, and wind
// down to Patrol when the sweep or the alert window ends.
func (g *Guard) updateAlert(w *World, dt float64) {
	g.alertTimer += dt
	if g.alertTimer >= g.params.AlertDuration {
		w.log(g, "state", "alert_expired", fmt.Sprintf("%.1fs", g.alertTimer), g.alertTimer)
		g.enterPatrol(w)
		return
	}

	g.nav.SetSpeed(g.params.ChaseSpeed * alertSpeedFactor)
	g.nav.Resume()
	if g.params.FlashlightEquipped {
		g.flashlightOn = true
	}

	if g.investigatingNoise {
		g.nav.SetDestination(g.noiseX, g.noiseY)
		if g.nav.RemainingDistance() < searchArriveDist {
			g.nav.Stop()
			g.heading = normalizeAngle(g.heading + scanTurnRate)
			g.dwellTimer += dt
			if g.dwellTimer >= g.params.InvestigationTime {
				w.log(g, "sound", "investigation_done", "nothing found", 0)
				g.enterPatrol(w)
			}
		}
		return
	}

	if g.pattern == nil {
		g.pattern = generateSearchPattern(w.Grid, g.lastKnownX, g.lastKnownY, searchRingRadius, searchPointCount, w.rng)
		g.dwellTimer = 0
	}
	g.visitPattern(w, dt, func() {
		g.enterPatrol(w)
	})
}

// updateSearch runs externally triggered investigations: a faster, chattier
// sweep that decays through a shortened Alert instead of straight to Patrol.
func (g *Guard) updateSearch(w *World, dt float64) {
	g.nav.SetSpeed(g.params.ChaseSpeed * searchSpeedFactor)
	g.nav.Resume()

	if g.pattern == nil {
		g.pattern = generateSearchPattern(w.Grid, g.lastKnownX, g.lastKnownY, searchRingRadius, searchPointCount, w.rng)
		g.dwellTimer = 0
	}
	if w.rng.Float64() < searchCommChance && g.hasLastKnown {
		w.Comms.BroadcastSighting(w, g, g.lastKnownX, g.lastKnownY)
	}
	g.visitPattern(w, dt, func() {
		w.log(g, "state", "search_complete", "area clear", 0)
		g.enterAlert(w, g.lastKnownX, g.lastKnownY, false)
		// Shortened wind-down after a full sweep.
		g.alertTimer = g.params.AlertDuration / 2
	})
}

// visitPattern walks the active pattern point by point, pausing to scan at
// each, and calls onDone once every point has been visited.
func (g *Guard) visitPattern(w *World, dt float64, onDone func()) {
	px, py, ok := g.pattern.Current()
	if !ok {
		onDone()
		return
	}
	g.nav.SetDestination(px, py)
	if g.nav.RemainingDistance() >= searchArriveDist {
		return
	}
	// Arrived: dwell and sweep before moving on.
	g.nav.Stop()
	g.heading = normalizeAngle(g.heading + scanTurnRate)
	g.dwellTimer += dt
	if g.dwellTimer < g.params.InvestigationTime {
		return
	}
	g.dwellTimer = 0
	g.pattern.Advance()
	g.nav.Resume()
	if g.pattern.Done() {
		onDone()
	}
}

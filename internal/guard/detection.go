package guard

import "math"

const (
	suspicionSightRate = 2.0 // suspicion gain per second of qualifying view

	// Movement-speed detection factors: a sprinting target is spotted much
	// faster than one holding still.
	detectFactorRunning = 0.4
	detectFactorWalking = 0.7

	flashlightDetectFactor = 0.5
)

// DetectionEvent is the per-tick perception sample for one guard. It is
// consumed immediately by the state machine and never persisted.
type DetectionEvent struct {
	InDirectView     bool
	InPeripheralView bool
	InFlashlightBeam bool
	HasLineOfSight   bool

	EffectiveDetectionTime float64
	Distance               float64
}

// Qualifies reports whether this sample counts toward detection.
func (ev DetectionEvent) Qualifies() bool {
	return ev.HasLineOfSight && (ev.InDirectView || ev.InPeripheralView || ev.InFlashlightBeam)
}

// effectiveSpotDistance is the view distance after target-side modifiers.
func (g *Guard) effectiveSpotDistance(t *Target) float64 {
	spot := g.params.ViewDistance
	if t != nil && t.SpotDistanceFactor > 0 {
		spot *= t.SpotDistanceFactor
	}
	return spot
}

// evaluateVision samples the three view channels plus line of sight.
func (g *Guard) evaluateVision(w *World) DetectionEvent {
	t := w.Target
	if t == nil {
		return DetectionEvent{}
	}
	d := dist(g.x, g.y, t.X, t.Y)
	ev := DetectionEvent{Distance: d}

	spot := g.effectiveSpotDistance(t)
	if spot <= 0 {
		// Zero or negative spot distance means the guard is effectively
		// blind: an instant miss, not a fault.
		return ev
	}
	if d < 1e-9 {
		ev.InDirectView = true
		ev.HasLineOfSight = true
		return ev
	}

	angle := math.Abs(normalizeAngle(HeadingTo(g.x, g.y, t.X, t.Y) - g.heading))

	if g.params.FlashlightEquipped && g.flashlightOn &&
		angle < g.params.FlashlightAngle/2 && d <= g.params.FlashlightRange {
		ev.InFlashlightBeam = true
		// The beam extends the spotting envelope.
		if g.params.FlashlightRange > spot {
			spot = g.params.FlashlightRange
		}
	}

	ev.InDirectView = d < spot && angle < g.params.FieldOfView/2
	ev.InPeripheralView = g.params.PeripheralVision && d < spot && angle < g.params.PeripheralVisionAngle/2

	if ev.InDirectView || ev.InPeripheralView || ev.InFlashlightBeam {
		ev.HasLineOfSight = !RaycastBlocked(g.x, g.y, t.X, t.Y, d, w.buildings)
	}
	return ev
}

// effectiveDetectionTime computes how long continuous exposure must last
// before the guard fully detects the target. Precedence is fixed: close
// range short-circuits, else peripheral-only, else distance-scaled base;
// then movement and flashlight factors apply and the lighting modifier
// divides (darkness stretches detection).
func (g *Guard) effectiveDetectionTime(w *World, ev DetectionEvent) float64 {
	t := w.Target
	spot := g.effectiveSpotDistance(t)
	if spot <= 0 {
		return 0
	}

	var edt float64
	switch {
	case ev.Distance < g.params.CloseRangeDistance:
		edt = g.params.CloseRangeDetectionTime
	case ev.InPeripheralView && !ev.InDirectView:
		edt = g.params.PeripheralDetectionTime
	default:
		edt = g.params.DetectionTime * (0.5 + 0.5*ev.Distance/spot)
	}

	switch {
	case t.IsRunning():
		edt *= detectFactorRunning
	case t.IsWalking():
		edt *= detectFactorWalking
	}
	if ev.InFlashlightBeam {
		edt *= flashlightDetectFactor
	}

	edt /= w.Lights.IlluminationAt(t.X, t.Y)
	return edt
}

// perceive runs the detection model for one tick: vision first, and when
// vision has nothing, suspicion decay and sound perception.
func (g *Guard) perceive(w *World, dt float64) {
	t := w.Target
	if t == nil {
		// Missing target: detection is a no-op, decay only.
		g.seesTarget = false
		g.lastEvent = DetectionEvent{}
		g.decaySuspicion(dt)
		return
	}

	ev := g.evaluateVision(w)
	g.lastEvent = ev
	g.seesTarget = ev.Qualifies()

	if g.seesTarget {
		g.raiseSuspicion(suspicionSightRate * dt)
		g.lastKnownX, g.lastKnownY = t.X, t.Y
		g.hasLastKnown = true

		switch g.state {
		case StatePatrol, StateAlert:
			edt := g.effectiveDetectionTime(w, ev)
			g.lastEvent.EffectiveDetectionTime = edt
			if edt <= 0 {
				// Degenerate parameters: never accumulate, never divide.
				return
			}
			g.detectionTimer += dt
			g.detectionProgress = clamp01(g.detectionTimer / edt)
			if g.detectionProgress >= 1 {
				w.log(g, "vision", "detection_complete", g.state.String(), g.detectionTimer)
				g.beginChase(w)
			}
		case StateSearch:
			// A sighting mid-search escalates immediately.
			g.beginChase(w)
		}
		return
	}

	g.decaySuspicion(dt)
	if g.state == StatePatrol {
		// Patrol-only reset: Alert keeps accumulated progress across
		// short misses.
		g.detectionTimer = 0
		g.detectionProgress = 0
	}
	g.processSound(w, dt)
}

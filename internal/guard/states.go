package guard

import "fmt"

// GuardState is the top-level behaviour state. Exactly one is active at a
// time; the hypnosis overlay suspends perception but does not change state.
type GuardState int

const (
	StatePatrol GuardState = iota
	StateChase
	StateAttack
	StateAlert
	StateSearch
)

func (s GuardState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateAlert:
		return "alert"
	case StateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// setState performs a state transition with its shared side effects:
// sink notification, sim-log entry, and outgoing comms on escalation.
// Setting the current state again is a no-op and re-triggers nothing.
func (g *Guard) setState(w *World, next GuardState) {
	if g.state == next {
		return
	}
	prev := g.state
	g.state = next

	w.log(g, "state", "change", fmt.Sprintf("%s → %s", prev, next), 0)
	w.Sink.OnGuardStateChanged(g, prev, next)
	g.think(w, fmt.Sprintf("%s → %s", prev, next))

	switch next {
	case StateChase, StateAlert, StateAttack:
		if g.hasLastKnown {
			w.Comms.BroadcastSighting(w, g, g.lastKnownX, g.lastKnownY)
		}
	}
	if next == StateChase && g.params.CanCallReinforcements && !g.calledReinforcements {
		g.calledReinforcements = true
		w.Comms.CallReinforcements(w, g, g.lastKnownX, g.lastKnownY)
	}
}

// beginChase is the common full-detection entry point.
func (g *Guard) beginChase(w *World) {
	g.lostTimer = 0
	g.persistentChaseTimer = 0
	g.suspicion = 1
	g.detectionTimer = 0
	g.detectionProgress = 0
	if !g.hasSpottedTarget {
		g.hasSpottedTarget = true
		w.Sink.OnTargetFirstSpotted(g)
		w.log(g, "vision", "target_spotted", "first sighting this episode", 0)
	}
	g.setState(w, StateChase)
}

// enterAlert moves the guard to Alert converging on (x,y). investigating
// marks the sound-investigation sub-mode, which walks to the heard position
// instead of sweeping a search pattern. Callers that must not downgrade an
// engaged guard (comms, external hooks) check state before calling; the
// guard's own wind-downs from Chase and Attack come through here too.
func (g *Guard) enterAlert(w *World, x, y float64, investigating bool) {
	g.lastKnownX, g.lastKnownY = x, y
	g.hasLastKnown = true
	g.alertTimer = 0
	g.investigatingNoise = investigating
	g.pattern = nil
	g.dwellTimer = 0
	if investigating {
		g.noiseX, g.noiseY = x, y
		w.Sink.OnInvestigationStarted(g, x, y)
		w.log(g, "sound", "investigate", fmt.Sprintf("(%.0f,%.0f)", x, y), 0)
	}
	g.setState(w, StateAlert)
}

// enterPatrol returns to the patrol loop with residual wariness. This is the
// only point where the spotted latch re-arms: detection is fully lost here.
func (g *Guard) enterPatrol(w *World) {
	g.hasSpottedTarget = false
	g.calledReinforcements = false
	g.detectionTimer = 0
	g.detectionProgress = 0
	g.pattern = nil
	g.investigatingNoise = false
	if g.suspicion < residualSuspicion {
		g.suspicion = residualSuspicion
	}
	if len(g.waypoints) > 0 {
		wp := g.waypoints[g.waypointIndex]
		g.nav.SetDestination(wp[0], wp[1])
	}
	g.nav.Resume()
	g.setState(w, StatePatrol)
}

// ForceAlert is the authoritative external escalation hook (citizen report,
// reinforcement delivery). It overrides the current state immediately unless
// the guard already outranks it.
func (g *Guard) ForceAlert(w *World, x, y float64) {
	if g.state == StateChase || g.state == StateAttack {
		return
	}
	g.enterAlert(w, x, y, false)
}

// ForceSearch starts an externally triggered area investigation at elevated
// speed (a reported sighting rather than the guard's own).
func (g *Guard) ForceSearch(w *World, x, y float64) {
	if g.state == StateChase || g.state == StateAttack {
		return
	}
	g.lastKnownX, g.lastKnownY = x, y
	g.hasLastKnown = true
	g.pattern = nil
	g.dwellTimer = 0
	g.investigatingNoise = false
	g.setState(w, StateSearch)
}

// ForceChase makes the guard pursue (x,y) as if the target was just seen.
func (g *Guard) ForceChase(w *World, x, y float64) {
	g.lastKnownX, g.lastKnownY = x, y
	g.hasLastKnown = true
	g.beginChase(w)
}

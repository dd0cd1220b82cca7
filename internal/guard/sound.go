package guard

import "fmt"

const (
	soundCheckInterval = 1.0 // seconds between evaluations per guard

	crouchSoundFactor  = 0.1
	soundMuffleFactor  = 0.5 // obstacle between guard and noise
	soundSpeedDivisor  = 10.0
	minActionIntensity = 0.2
	alertIntensity     = 0.8 // sprinting this loud escalates immediately

	soundSuspicionFactor = 0.3
	runNoiseSuspicion    = 1.5
	investigateThreshold = 0.5
)

// processSound evaluates target-generated noise against hearing ranges.
// Called only on ticks where vision produced nothing. Evaluation is
// rate-limited to once per second of game time per guard.
func (g *Guard) processSound(w *World, dt float64) {
	// Chase, Attack, and Search already have better intel than a noise.
	if g.state != StatePatrol && g.state != StateAlert {
		return
	}
	g.soundCheckTimer += dt
	if g.soundCheckTimer < soundCheckInterval {
		return
	}
	g.soundCheckTimer = 0

	t := w.Target
	if t == nil {
		return
	}
	speed := t.Speed()
	if speed < g.params.MinSoundThreshold {
		return
	}

	var hearingRange float64
	switch {
	case speed > runSpeedThreshold:
		hearingRange = g.params.RunningSoundRange
	case speed > g.params.MinSoundThreshold:
		hearingRange = g.params.WalkingSoundRange
	default:
		return
	}
	if t.Crouched {
		hearingRange *= crouchSoundFactor
	}
	if hearingRange <= 0 {
		return
	}

	d := dist(g.x, g.y, t.X, t.Y)
	if d > hearingRange {
		return
	}

	intensity := (hearingRange - d) / hearingRange * (speed / soundSpeedDivisor)
	if t.Crouched {
		intensity *= crouchSoundFactor
	}
	if RaycastBlocked(g.x, g.y, t.X, t.Y, d, w.buildings) {
		intensity *= soundMuffleFactor
	}

	running := speed > runSpeedThreshold && !t.Crouched

	if intensity > alertIntensity && running {
		// Loud sprint: escalate regardless of current suspicion.
		w.log(g, "sound", "heard_sprint", fmt.Sprintf("intensity=%.2f", intensity), intensity)
		g.enterAlert(w, t.X, t.Y, true)
		return
	}

	if intensity <= minActionIntensity {
		return
	}

	gain := intensity * soundSuspicionFactor
	if running {
		gain *= runNoiseSuspicion
	}
	g.raiseSuspicion(gain)
	w.log(g, "sound", "heard", fmt.Sprintf("intensity=%.2f suspicion=%.2f", intensity, g.suspicion), intensity)

	if g.suspicion > investigateThreshold && g.state == StatePatrol {
		g.enterAlert(w, t.X, t.Y, true)
	}
}

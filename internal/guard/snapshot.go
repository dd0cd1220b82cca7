package guard

import "encoding/json"

// GuardSnapshot is the complete serializable runtime state of a guard.
// Restoring it mid-episode and resuming ticks must reproduce the same
// subsequent transitions as an uninterrupted run: everything behavioural
// lives here, nothing hides in unexported transients.
type GuardSnapshot struct {
	State             GuardState `json:"state"`
	Suspicion         float64    `json:"suspicion"`
	DetectionTimer    float64    `json:"detectionTimer"`
	DetectionProgress float64    `json:"detectionProgress"`

	LostTimer            float64 `json:"lostTimer"`
	AlertTimer           float64 `json:"alertTimer"`
	PersistentChaseTimer float64 `json:"persistentChaseTimer"`

	LastKnownX           float64 `json:"lastKnownX"`
	LastKnownY           float64 `json:"lastKnownY"`
	HasLastKnown         bool    `json:"hasLastKnown"`
	HasSpottedTarget     bool    `json:"hasSpottedTarget"`
	CalledReinforcements bool    `json:"calledReinforcements"`
	FlashlightOn         bool    `json:"flashlightOn"`

	WaypointIndex int     `json:"waypointIndex"`
	PatrolForward bool    `json:"patrolForward"`
	Waiting       bool    `json:"waiting"`
	WaitTimer     float64 `json:"waitTimer"`
	ScanTimer     float64 `json:"scanTimer"`

	Pattern            *SearchPattern `json:"pattern,omitempty"`
	DwellTimer         float64        `json:"dwellTimer"`
	InvestigatingNoise bool           `json:"investigatingNoise"`
	NoiseX             float64        `json:"noiseX"`
	NoiseY             float64        `json:"noiseY"`
	SoundCheckTimer    float64        `json:"soundCheckTimer"`

	AttackPhase   AttackPhase `json:"attackPhase"`
	AttackTimer   float64     `json:"attackTimer"`
	CooldownTimer float64     `json:"cooldownTimer"`

	Trail      [][2]float64 `json:"trail,omitempty"`
	TrailTimer float64      `json:"trailTimer"`

	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// Snapshot captures the guard's behavioural state.
func (g *Guard) Snapshot() GuardSnapshot {
	var pattern *SearchPattern
	if g.pattern != nil {
		cp := *g.pattern
		cp.Points = append([][2]float64(nil), g.pattern.Points...)
		pattern = &cp
	}
	return GuardSnapshot{
		State:                g.state,
		Suspicion:            g.suspicion,
		DetectionTimer:       g.detectionTimer,
		DetectionProgress:    g.detectionProgress,
		LostTimer:            g.lostTimer,
		AlertTimer:           g.alertTimer,
		PersistentChaseTimer: g.persistentChaseTimer,
		LastKnownX:           g.lastKnownX,
		LastKnownY:           g.lastKnownY,
		HasLastKnown:         g.hasLastKnown,
		HasSpottedTarget:     g.hasSpottedTarget,
		CalledReinforcements: g.calledReinforcements,
		FlashlightOn:         g.flashlightOn,
		WaypointIndex:        g.waypointIndex,
		PatrolForward:        g.patrolForward,
		Waiting:              g.waiting,
		WaitTimer:            g.waitTimer,
		ScanTimer:            g.scanTimer,
		Pattern:              pattern,
		DwellTimer:           g.dwellTimer,
		InvestigatingNoise:   g.investigatingNoise,
		NoiseX:               g.noiseX,
		NoiseY:               g.noiseY,
		SoundCheckTimer:      g.soundCheckTimer,
		AttackPhase:          g.attackPhase,
		AttackTimer:          g.attackTimer,
		CooldownTimer:        g.cooldownTimer,
		Trail:                append([][2]float64(nil), g.trail...),
		TrailTimer:           g.trailTimer,
		X:                    g.x,
		Y:                    g.y,
		Heading:              g.heading,
	}
}

// Restore overwrites the guard's behavioural state from a snapshot.
func (g *Guard) Restore(s GuardSnapshot) {
	g.state = s.State
	g.suspicion = s.Suspicion
	g.detectionTimer = s.DetectionTimer
	g.detectionProgress = s.DetectionProgress
	g.lostTimer = s.LostTimer
	g.alertTimer = s.AlertTimer
	g.persistentChaseTimer = s.PersistentChaseTimer
	g.lastKnownX = s.LastKnownX
	g.lastKnownY = s.LastKnownY
	g.hasLastKnown = s.HasLastKnown
	g.hasSpottedTarget = s.HasSpottedTarget
	g.calledReinforcements = s.CalledReinforcements
	g.flashlightOn = s.FlashlightOn
	g.waypointIndex = s.WaypointIndex
	g.patrolForward = s.PatrolForward
	g.waiting = s.Waiting
	g.waitTimer = s.WaitTimer
	g.scanTimer = s.ScanTimer
	g.pattern = s.Pattern
	g.dwellTimer = s.DwellTimer
	g.investigatingNoise = s.InvestigatingNoise
	g.noiseX = s.NoiseX
	g.noiseY = s.NoiseY
	g.soundCheckTimer = s.SoundCheckTimer
	g.attackPhase = s.AttackPhase
	g.attackTimer = s.AttackTimer
	g.cooldownTimer = s.CooldownTimer
	g.trail = append([][2]float64(nil), s.Trail...)
	g.trailTimer = s.TrailTimer
	g.x = s.X
	g.y = s.Y
	g.heading = s.Heading
	if a, ok := g.nav.(*GridNavAgent); ok {
		a.Warp(s.X, s.Y)
	}
}

// MarshalState serializes the snapshot to JSON.
func (g *Guard) MarshalState() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// UnmarshalState restores the guard from JSON produced by MarshalState.
func (g *Guard) UnmarshalState(data []byte) error {
	var s GuardSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	g.Restore(s)
	return nil
}

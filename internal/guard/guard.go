package guard

import (
	"fmt"
	"math"
)

const (
	// TickRate is the simulation frequency; TickDT is the per-tick step in
	// seconds. All parameters are expressed in seconds and units/second.
	TickRate = 60.0
	TickDT   = 1.0 / TickRate

	guardRadius       = 6
	guardTurnRate     = 0.12 // radians per tick at full attention
	residualSuspicion = 0.3  // floor after an alert winds down
)

// GuardParams are the tunable perception/behaviour knobs. A spawn-time
// snapshot is kept as the base; the difficulty service multiplies against
// the base only, never against already-modified values.
type GuardParams struct {
	FieldOfView           float64 // radians, full arc
	PeripheralVision      bool
	PeripheralVisionAngle float64 // radians, full arc
	ViewDistance          float64
	CloseRangeDistance    float64

	DetectionTime           float64 // seconds at the base rate
	CloseRangeDetectionTime float64
	PeripheralDetectionTime float64

	FlashlightEquipped bool
	FlashlightRange    float64
	FlashlightAngle    float64 // radians, full arc

	SoundDetectionRange float64
	WalkingSoundRange   float64
	RunningSoundRange   float64
	MinSoundThreshold   float64 // target speed below this is silent

	SuspicionDecayRate float64 // per second

	PatrolSpeed float64
	ChaseSpeed  float64

	AttackRange        float64
	AttackCooldown     float64
	AttackDamage       float64
	AttackWindupTime   float64
	AttackRecoveryTime float64

	TimeToLosePlayer    float64
	PersistentChaseTime float64
	AlertDuration       float64
	InvestigationTime   float64

	CommunicationRange    float64
	ReinforcementRadius   float64
	CanCallReinforcements bool
}

// DefaultGuardParams returns the baseline night-watch guard.
func DefaultGuardParams() GuardParams {
	return GuardParams{
		FieldOfView:           90 * math.Pi / 180,
		PeripheralVision:      true,
		PeripheralVisionAngle: 160 * math.Pi / 180,
		ViewDistance:          300,
		CloseRangeDistance:    60,

		DetectionTime:           2.0,
		CloseRangeDetectionTime: 0.3,
		PeripheralDetectionTime: 4.0,

		FlashlightEquipped: true,
		FlashlightRange:    380,
		FlashlightAngle:    30 * math.Pi / 180,

		SoundDetectionRange: 260,
		WalkingSoundRange:   120,
		RunningSoundRange:   260,
		MinSoundThreshold:   0.5,

		SuspicionDecayRate: 0.1,

		PatrolSpeed: 60,
		ChaseSpeed:  140,

		AttackRange:        28,
		AttackCooldown:     1.5,
		AttackDamage:       10,
		AttackWindupTime:   0.3,
		AttackRecoveryTime: 0.4,

		TimeToLosePlayer:    5,
		PersistentChaseTime: 10,
		AlertDuration:       12,
		InvestigationTime:   2.0,

		CommunicationRange:    320,
		ReinforcementRadius:   500,
		CanCallReinforcements: true,
	}
}

// Guard is an autonomous patrol agent.
type Guard struct {
	id    int
	label string

	x, y    float64
	heading float64

	base   GuardParams // spawn snapshot, modifier arithmetic anchors here
	params GuardParams // effective values

	state GuardState

	suspicion         float64
	detectionTimer    float64
	detectionProgress float64
	seesTarget        bool
	lastEvent         DetectionEvent

	lostTimer            float64
	alertTimer           float64
	persistentChaseTimer float64

	lastKnownX, lastKnownY float64
	hasLastKnown           bool
	hasSpottedTarget       bool
	calledReinforcements   bool

	flashlightOn bool

	hypnotized    bool
	hypnosisTimer float64

	// Patrol
	waypoints     [][2]float64
	waypointIndex int
	patrolForward bool
	waiting       bool
	waitTimer     float64
	scanTimer     float64

	// Alert / Search
	pattern            *SearchPattern
	dwellTimer         float64
	investigatingNoise bool
	noiseX, noiseY     float64
	soundCheckTimer    float64

	// Attack
	attackPhase   AttackPhase
	attackTimer   float64
	cooldownTimer float64

	// Pursuit
	trail      [][2]float64
	trailTimer float64

	modifiers []activeModifier

	nav      Navigator
	thoughts *ThoughtLog
}

// NewGuard creates a guard at (x,y) walking the given patrol loop.
func NewGuard(id int, x, y float64, params GuardParams, waypoints [][2]float64, nav Navigator) *Guard {
	heading := 0.0
	if len(waypoints) > 0 {
		heading = HeadingTo(x, y, waypoints[0][0], waypoints[0][1])
	}
	g := &Guard{
		id:            id,
		label:         fmt.Sprintf("G%d", id),
		x:             x,
		y:             y,
		heading:       heading,
		base:          params,
		params:        params,
		state:         StatePatrol,
		patrolForward: true,
		waypoints:     waypoints,
		nav:           nav,
		thoughts:      NewThoughtLog(),
	}
	if len(waypoints) > 0 {
		nav.SetDestination(waypoints[0][0], waypoints[0][1])
	}
	return g
}

func (g *Guard) EntityID() int                 { return g.id }
func (g *Guard) EntityKind() EntityKind        { return KindGuard }
func (g *Guard) EntityPos() (float64, float64) { return g.x, g.y }

func (g *Guard) ID() int                 { return g.id }
func (g *Guard) Label() string           { return g.label }
func (g *Guard) State() GuardState       { return g.state }
func (g *Guard) Suspicion() float64      { return g.suspicion }
func (g *Guard) DetectionProgress() float64 { return g.detectionProgress }
func (g *Guard) Heading() float64        { return g.heading }
func (g *Guard) Params() GuardParams     { return g.params }
func (g *Guard) BaseParams() GuardParams { return g.base }
func (g *Guard) FlashlightOn() bool      { return g.flashlightOn }
func (g *Guard) Hypnotized() bool        { return g.hypnotized }
func (g *Guard) SeesTarget() bool        { return g.seesTarget }
func (g *Guard) Thoughts() *ThoughtLog   { return g.thoughts }

// LastKnownTargetPosition returns where the guard last placed the target.
func (g *Guard) LastKnownTargetPosition() (float64, float64, bool) {
	return g.lastKnownX, g.lastKnownY, g.hasLastKnown
}

// Hypnotize forces the non-interactive overlay for the given duration:
// patrol movement continues but perception and combat are suspended.
func (g *Guard) Hypnotize(duration float64) {
	g.hypnotized = true
	g.hypnosisTimer = duration
	g.attackPhase = AttackIdle
	g.attackTimer = 0
}

// Update runs the guard's full per-tick pipeline: perception, state
// behaviour, then movement. Ordering within the tick is strict.
func (g *Guard) Update(w *World, dt float64) {
	g.tickModifiers(dt)

	if g.hypnotized {
		g.hypnosisTimer -= dt
		if g.hypnosisTimer <= 0 {
			g.hypnotized = false
		}
		// Only patrol movement runs under hypnosis.
		g.updatePatrolMovement(w, dt)
		g.advance(w, dt)
		return
	}

	g.perceive(w, dt)

	switch g.state {
	case StatePatrol:
		g.updatePatrol(w, dt)
	case StateChase:
		g.updateChase(w, dt)
	case StateAttack:
		g.updateAttack(w, dt)
	case StateAlert:
		g.updateAlert(w, dt)
	case StateSearch:
		g.updateSearch(w, dt)
	}

	g.advance(w, dt)
}

// advance steps the navigator and syncs position back into the index, so
// later queries this tick see the post-move position.
func (g *Guard) advance(w *World, dt float64) {
	g.nav.Advance(dt)
	nx, ny := g.nav.Position()
	moved := dist(g.x, g.y, nx, ny) > 1e-9
	g.x, g.y = nx, ny
	if moved {
		w.Index.UpdatePosition(g)
		vx, vy := g.nav.Velocity()
		if math.Hypot(vx, vy) > 1e-6 {
			g.heading = turnToward(g.heading, math.Atan2(vy, vx), guardTurnRate)
		}
	}
}

func (g *Guard) raiseSuspicion(amount float64) {
	g.suspicion = clamp01(g.suspicion + amount)
}

func (g *Guard) decaySuspicion(dt float64) {
	g.suspicion -= g.params.SuspicionDecayRate * dt
	if g.suspicion < 0 {
		g.suspicion = 0
	}
}

func (g *Guard) think(w *World, msg string) {
	g.thoughts.Add(w.tick, g.label, msg)
}

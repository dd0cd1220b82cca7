package guard

// TestSim is a headless harness used by tests and the headless reporter.
// It mirrors the windowed game's tick but has no ebiten dependency and
// supports deterministic seeding plus structured logging.
type TestSim struct {
	World *World
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // map size, buildings, lights, seed, verbose
	simOptActor                      // guards and target — applied after the grid is built
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithMapSize sets the playfield dimensions.
func WithMapSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.World.Width = w
		ts.World.Height = h
	}}
}

// WithBuilding adds an obstacle.
func WithBuilding(x, y, w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.World.AddBuilding(x, y, w, h)
	}}
}

// WithLight places a lit point light.
func WithLight(x, y, intensity, lightRange float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.World.AddLight(x, y, intensity, lightRange)
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.World.SimLog = NewSimLog(v)
	}}
}

// WithSink installs a notification sink (defaults to NopSink).
func WithSink(sink NotificationSink) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.World.Sink = sink
	}}
}

// WithGuard spawns a guard with default parameters and the given patrol
// waypoints (none means the guard stands post).
func WithGuard(id int, x, y float64, waypoints ...[2]float64) SimOption {
	return WithGuardParams(id, x, y, DefaultGuardParams(), waypoints...)
}

// WithGuardParams spawns a guard with explicit parameters.
func WithGuardParams(id int, x, y float64, params GuardParams, waypoints ...[2]float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.SpawnGuard(id, x, y, params, waypoints)
	}}
}

// WithTarget places the hidden actor.
func WithTarget(x, y float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.SetTarget(NewTarget(x, y))
	}}
}

// WithTargetRoute places a target looping a scripted route at speed.
func WithTargetRoute(speed float64, points ...[2]float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		t := NewTarget(points[0][0], points[0][1])
		t.SetRoute(speed, points...)
		ts.World.SetTarget(t)
	}}
}

// NewTestSim constructs a harness in ordered passes: infrastructure first,
// then the nav grid, then actors.
func NewTestSim(seed int64, opts ...SimOption) *TestSim {
	ts := &TestSim{World: NewWorld(1280, 720, seed)}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.World.BuildGrid()
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	ts.World.RunTicks(n)
}

// RunUntil advances up to maxTicks, stopping early if predicate returns
// true. Returns the tick at which the predicate held, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.World.Tick()
		if predicate(ts) {
			return ts.World.tick
		}
	}
	return -1
}

// Guard returns the guard with the given ID, or nil.
func (ts *TestSim) Guard(id int) *Guard {
	return ts.World.GuardByID(id)
}

// Log returns the structured sim log.
func (ts *TestSim) Log() *SimLog {
	return ts.World.SimLog
}

// Seconds converts a duration in seconds to whole ticks.
func Seconds(s float64) int {
	return int(s*TickRate + 0.5)
}

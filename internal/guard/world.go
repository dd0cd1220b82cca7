package guard

import (
	"fmt"
	"math/rand"
)

// World owns the services a guard update consumes: nav grid, spatial index,
// lights, comms, the notification sink, and the seeded random source. All of
// them are explicit dependencies — nothing global — so tests can swap any of
// them for deterministic doubles.
type World struct {
	Width  int
	Height int

	buildings []rect

	Grid   *NavGrid
	Index  *SpatialIndex
	Lights *LightField
	Comms  *CommsNet
	Sink   NotificationSink
	SimLog *SimLog

	Target *Target
	Guards []*Guard

	rng  *rand.Rand
	tick int
}

// NewWorld creates an empty world. Buildings must be added before
// BuildGrid, and BuildGrid before guards are spawned.
func NewWorld(width, height int, seed int64) *World {
	return &World{
		Width:  width,
		Height: height,
		Index:  NewSpatialIndex(),
		Lights: NewLightField(nil),
		Comms:  NewCommsNet(),
		Sink:   NopSink{},
		SimLog: NewSimLog(false),
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation, not crypto
	}
}

// AddBuilding registers an obstacle footprint.
func (w *World) AddBuilding(x, y, width, height int) {
	w.buildings = append(w.buildings, rect{x: x, y: y, w: width, h: height})
}

// Buildings returns the obstacle set (for rendering).
func (w *World) Buildings() [][4]int {
	out := make([][4]int, len(w.buildings))
	for i, b := range w.buildings {
		out[i] = [4]int{b.x, b.y, b.w, b.h}
	}
	return out
}

// BuildGrid (re)builds the nav grid from the current building set.
func (w *World) BuildGrid() {
	w.Grid = NewNavGrid(w.Width, w.Height, w.buildings, guardRadius)
}

// SpawnGuard creates a guard with its own nav agent and registers it.
func (w *World) SpawnGuard(id int, x, y float64, params GuardParams, waypoints [][2]float64) *Guard {
	g := NewGuard(id, x, y, params, waypoints, NewGridNavAgent(w.Grid, x, y))
	w.Guards = append(w.Guards, g)
	w.Index.Register(g)
	return g
}

// DespawnGuard removes a guard and reverts its globally visible side
// effects on the same tick: index registration and any in-flight attack.
func (w *World) DespawnGuard(id int) {
	for i, g := range w.Guards {
		if g.id != id {
			continue
		}
		g.attackPhase = AttackIdle
		g.attackTimer = 0
		g.nav.Stop()
		w.Index.Unregister(id)
		w.Guards = append(w.Guards[:i], w.Guards[i+1:]...)
		return
	}
}

// GuardByID returns the guard with the given ID, or nil.
func (w *World) GuardByID(id int) *Guard {
	for _, g := range w.Guards {
		if g.id == id {
			return g
		}
	}
	return nil
}

// SetTarget installs the hidden actor and registers it in the index.
func (w *World) SetTarget(t *Target) {
	if w.Target != nil {
		w.Index.Unregister(w.Target.EntityID())
	}
	w.Target = t
	if t != nil {
		w.Index.Register(t)
	}
}

// AddLight places a static point light.
func (w *World) AddLight(x, y, intensity, lightRange float64) {
	w.Lights.lights = append(w.Lights.lights, Light{X: x, Y: y, Intensity: intensity, Range: lightRange, Lit: true})
}

// CurrentTick returns the current simulation tick.
func (w *World) CurrentTick() int { return w.tick }

// Rand exposes the world's seeded random source.
func (w *World) Rand() *rand.Rand { return w.rng }

// Tick advances the simulation by one step. Within the tick each guard's
// own pipeline is strictly ordered (perception → state → movement); the
// target moves first so every guard samples the same snapshot.
func (w *World) Tick() {
	w.tick++

	if w.Target != nil {
		w.Target.Advance(TickDT)
		w.Index.UpdatePosition(w.Target)
	}

	for _, g := range w.Guards {
		g.Update(w, TickDT)

		w.SimLog.AddVerbose(w.tick, g.label, "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", g.x, g.y), 0)
		w.SimLog.AddVerbose(w.tick, g.label, "suspicion", "level",
			fmt.Sprintf("%.3f", g.suspicion), g.suspicion)
		w.SimLog.AddVerbose(w.tick, g.label, "vision", "progress",
			fmt.Sprintf("%.3f", g.detectionProgress), g.detectionProgress)
	}
}

// RunTicks advances the world n ticks.
func (w *World) RunTicks(n int) {
	for i := 0; i < n; i++ {
		w.Tick()
	}
}

// log records a guard-attributed sim-log entry at the current tick.
func (w *World) log(g *Guard, category, key, value string, numVal float64) {
	label := "--"
	if g != nil {
		label = g.label
	}
	w.SimLog.Add(w.tick, label, category, key, value, numVal)
}

// NewDemoWorld builds the scene both cmd programs run: a walled yard with
// three patrol routes, a handful of lamps, and a target sneaking a loop.
func NewDemoWorld(seed int64) *World {
	w := NewWorld(1280, 720, seed)

	w.AddBuilding(200, 120, 180, 120)
	w.AddBuilding(560, 300, 160, 200)
	w.AddBuilding(900, 100, 140, 160)
	w.AddBuilding(300, 500, 220, 120)
	w.AddBuilding(950, 480, 180, 140)
	w.BuildGrid()

	w.AddLight(450, 100, 1.0, 220)
	w.AddLight(820, 380, 0.8, 200)
	w.AddLight(640, 650, 0.9, 240)

	params := DefaultGuardParams()
	w.SpawnGuard(0, 100, 100, params, [][2]float64{{100, 100}, {480, 80}, {480, 280}, {120, 300}})
	w.SpawnGuard(1, 760, 560, params, [][2]float64{{760, 560}, {1180, 560}, {1180, 300}, {780, 260}})
	w.SpawnGuard(2, 120, 640, params, [][2]float64{{120, 640}, {560, 660}, {860, 640}})

	t := NewTarget(1200, 80)
	t.SetRoute(40, [2]float64{1200, 80}, [2]float64{640, 120}, [2]float64{120, 420}, [2]float64{620, 560}, [2]float64{1200, 400})
	w.SetTarget(t)
	return w
}

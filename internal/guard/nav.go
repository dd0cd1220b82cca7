package guard

import "math"

const navArriveEpsilon = 2.0

// Navigator is the movement service a guard drives. Path validity and
// obstacle avoidance are fully delegated; the guard only sets destinations
// and speeds and polls progress.
type Navigator interface {
	SetDestination(x, y float64)
	RemainingDistance() float64
	HasPendingPath() bool
	Velocity() (float64, float64)
	SetSpeed(speed float64)
	Stop()
	Resume()
	Position() (float64, float64)
	// Advance moves the agent along its path for dt seconds.
	Advance(dt float64)
}

// GridNavAgent walks A* paths over a NavGrid at a settable speed.
type GridNavAgent struct {
	grid *NavGrid

	x, y      float64
	destX     float64
	destY     float64
	hasDest   bool
	path      [][2]float64
	pathIndex int
	speed     float64 // units per second
	stopped   bool
	vx, vy    float64
}

func NewGridNavAgent(grid *NavGrid, x, y float64) *GridNavAgent {
	return &GridNavAgent{grid: grid, x: x, y: y}
}

// SetDestination computes a fresh path. A destination close to the current
// one keeps the existing path to avoid re-path thrash every tick.
func (a *GridNavAgent) SetDestination(x, y float64) {
	if a.hasDest && a.pathIndex < len(a.path) && dist(x, y, a.destX, a.destY) < navArriveEpsilon {
		return
	}
	a.destX, a.destY = x, y
	a.hasDest = true
	if a.grid == nil {
		// No grid: walk straight at the destination.
		a.path = [][2]float64{{x, y}}
		a.pathIndex = 0
		return
	}
	a.path = a.grid.FindPath(a.x, a.y, x, y)
	a.pathIndex = 0
}

// RemainingDistance returns the path length left to walk, or 0 when idle.
func (a *GridNavAgent) RemainingDistance() float64 {
	if a.pathIndex >= len(a.path) {
		if a.hasDest {
			return dist(a.x, a.y, a.destX, a.destY)
		}
		return 0
	}
	total := 0.0
	px, py := a.x, a.y
	for i := a.pathIndex; i < len(a.path); i++ {
		wp := a.path[i]
		total += dist(px, py, wp[0], wp[1])
		px, py = wp[0], wp[1]
	}
	return total
}

func (a *GridNavAgent) HasPendingPath() bool {
	return a.pathIndex < len(a.path)
}

func (a *GridNavAgent) Velocity() (float64, float64) { return a.vx, a.vy }

func (a *GridNavAgent) SetSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	a.speed = speed
}

func (a *GridNavAgent) Stop()   { a.stopped = true }
func (a *GridNavAgent) Resume() { a.stopped = false }

func (a *GridNavAgent) Position() (float64, float64) { return a.x, a.y }

// Warp teleports the agent, dropping any pending path.
func (a *GridNavAgent) Warp(x, y float64) {
	a.x, a.y = x, y
	a.path = nil
	a.pathIndex = 0
	a.hasDest = false
	a.vx, a.vy = 0, 0
}

// Advance moves along the current path, consuming up to speed*dt distance.
func (a *GridNavAgent) Advance(dt float64) {
	a.vx, a.vy = 0, 0
	if a.stopped || a.speed <= 0 || a.pathIndex >= len(a.path) {
		return
	}
	startX, startY := a.x, a.y
	remaining := a.speed * dt
	for remaining > 0 && a.pathIndex < len(a.path) {
		wp := a.path[a.pathIndex]
		dx := wp[0] - a.x
		dy := wp[1] - a.y
		d := math.Hypot(dx, dy)
		if d <= remaining {
			a.x = wp[0]
			a.y = wp[1]
			remaining -= d
			a.pathIndex++
		} else {
			a.x += (dx / d) * remaining
			a.y += (dy / d) * remaining
			remaining = 0
		}
	}
	if dt > 0 {
		a.vx = (a.x - startX) / dt
		a.vy = (a.y - startY) / dt
	}
}

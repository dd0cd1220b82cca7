package guard

import "math"

const (
	// Movement-speed classification, units per second.
	walkSpeedThreshold = 1.0
	runSpeedThreshold  = 5.0

	targetEntityID = -1
)

// Target is the hidden actor guards hunt. Guards treat it read-only: they
// sample position, speed class, crouch state, and the spot-distance factor
// equipment may have applied.
type Target struct {
	X, Y     float64
	Crouched bool

	// SpotDistanceFactor scales every guard's view distance against this
	// target (cloaks < 1, glowing gear > 1). Zero means unmodified.
	SpotDistanceFactor float64

	prevX, prevY float64
	vx, vy       float64

	// Scripted movement for scenarios: the target loops over its route.
	route      [][2]float64
	routeIndex int
	moveSpeed  float64
}

func NewTarget(x, y float64) *Target {
	return &Target{X: x, Y: y, prevX: x, prevY: y}
}

func (t *Target) EntityID() int                { return targetEntityID }
func (t *Target) EntityKind() EntityKind       { return KindTarget }
func (t *Target) EntityPos() (float64, float64) { return t.X, t.Y }

// Speed returns the current movement speed in units per second.
func (t *Target) Speed() float64 {
	return math.Hypot(t.vx, t.vy)
}

func (t *Target) Velocity() (float64, float64) { return t.vx, t.vy }

func (t *Target) IsRunning() bool { return t.Speed() > runSpeedThreshold }
func (t *Target) IsWalking() bool {
	s := t.Speed()
	return s > walkSpeedThreshold && s <= runSpeedThreshold
}

// SetRoute gives the target a looping scripted route at the given speed.
func (t *Target) SetRoute(speed float64, points ...[2]float64) {
	t.route = points
	t.routeIndex = 0
	t.moveSpeed = speed
}

// MoveTo teleports the target and records the implied velocity over dt,
// so speed classification works for externally driven targets (tests).
func (t *Target) MoveTo(x, y float64, dt float64) {
	t.prevX, t.prevY = t.X, t.Y
	t.X, t.Y = x, y
	if dt > 0 {
		t.vx = (t.X - t.prevX) / dt
		t.vy = (t.Y - t.prevY) / dt
	}
}

// SetVelocity forces the reported velocity without moving the target.
func (t *Target) SetVelocity(vx, vy float64) {
	t.vx, t.vy = vx, vy
}

// Advance walks the scripted route for dt seconds, if one is set.
func (t *Target) Advance(dt float64) {
	if len(t.route) == 0 || t.moveSpeed <= 0 {
		t.prevX, t.prevY = t.X, t.Y
		return
	}
	t.prevX, t.prevY = t.X, t.Y
	remaining := t.moveSpeed * dt
	for remaining > 0 {
		wp := t.route[t.routeIndex]
		d := dist(t.X, t.Y, wp[0], wp[1])
		if d <= remaining {
			t.X, t.Y = wp[0], wp[1]
			remaining -= d
			t.routeIndex = (t.routeIndex + 1) % len(t.route)
		} else {
			t.X += (wp[0] - t.X) / d * remaining
			t.Y += (wp[1] - t.Y) / d * remaining
			remaining = 0
		}
	}
	if dt > 0 {
		t.vx = (t.X - t.prevX) / dt
		t.vy = (t.Y - t.prevY) / dt
	}
}

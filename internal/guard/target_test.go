package guard

import (
	"math"
	"testing"
)

func TestTargetSpeedClassification(t *testing.T) {
	tg := NewTarget(0, 0)
	if tg.IsWalking() || tg.IsRunning() {
		t.Fatal("fresh target should be still")
	}

	tg.SetVelocity(3, 0)
	if !tg.IsWalking() || tg.IsRunning() {
		t.Fatalf("speed 3 should classify as walking (speed=%f)", tg.Speed())
	}

	tg.SetVelocity(6, 0)
	if !tg.IsRunning() || tg.IsWalking() {
		t.Fatalf("speed 6 should classify as running (speed=%f)", tg.Speed())
	}

	// Boundary: exactly the run threshold still counts as walking.
	tg.SetVelocity(runSpeedThreshold, 0)
	if tg.IsRunning() {
		t.Fatal("speed at the run threshold should not classify as running")
	}
}

func TestTargetMoveToImpliesVelocity(t *testing.T) {
	tg := NewTarget(0, 0)
	tg.MoveTo(2, 0, 1.0)
	vx, vy := tg.Velocity()
	if math.Abs(vx-2) > 1e-9 || vy != 0 {
		t.Fatalf("expected implied velocity (2, 0), got (%f, %f)", vx, vy)
	}
}

func TestTargetRouteLoops(t *testing.T) {
	tg := NewTarget(0, 0)
	tg.SetRoute(100, [2]float64{0, 0}, [2]float64{100, 0})

	// One second at speed 100 lands exactly on the second point.
	tg.Advance(1.0)
	if math.Abs(tg.X-100) > 1e-6 || math.Abs(tg.Y) > 1e-6 {
		t.Fatalf("expected (100, 0), got (%f, %f)", tg.X, tg.Y)
	}

	// Another second walks the loop back toward the first point.
	tg.Advance(1.0)
	if math.Abs(tg.X) > 1e-6 {
		t.Fatalf("expected return to (0, 0), got (%f, %f)", tg.X, tg.Y)
	}

	if tg.Speed() < walkSpeedThreshold {
		t.Fatal("moving target should report route speed")
	}
}

package guard

import (
	"math"
	"testing"
)

func TestDirectSightingEscalatesToChase(t *testing.T) {
	sink := &RecordingSink{}
	ts := NewTestSim(1,
		WithSink(sink),
		WithGuard(0, 100, 100),
		WithTarget(250, 100),
	)
	g := ts.Guard(0)

	tick := ts.RunUntil(func(*TestSim) bool { return g.State() == StateChase }, Seconds(10))
	if tick < 0 {
		t.Fatalf("guard never escalated; log:\n%s", ts.Log().Format())
	}
	// Standing exposure at 150 units takes a couple of seconds, not an instant.
	if tick < Seconds(1) {
		t.Fatalf("detection completed suspiciously fast at tick %d", tick)
	}
	if sink.Count("spotted") != 1 {
		t.Fatalf("expected one first-spotted event, got %d", sink.Count("spotted"))
	}

	// Staying in view keeps the chase going without re-firing the latch.
	ts.RunTicks(Seconds(2))
	if g.State() != StateChase && g.State() != StateAttack {
		t.Fatalf("guard dropped pursuit while the target stayed put, state=%s", g.State())
	}
	if sink.Count("spotted") != 1 {
		t.Fatalf("first-spotted fired again mid-episode: %d", sink.Count("spotted"))
	}
}

func TestLostTargetHoldsThroughPersistentChase(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithTarget(250, 100),
	)
	g := ts.Guard(0)

	g.ForceChase(ts.World, 250, 100)
	ts.World.SetTarget(nil)

	// TimeToLosePlayer is 5s but the persistent-chase grace is 10s: both
	// must elapse before the guard gives up.
	ts.RunTicks(Seconds(9.5))
	if g.State() != StateChase {
		t.Fatalf("guard gave up before the persistent window, state=%s", g.State())
	}

	tick := ts.RunUntil(func(*TestSim) bool { return g.State() == StateAlert }, Seconds(3))
	if tick < 0 {
		t.Fatalf("guard never wound down to alert, state=%s", g.State())
	}
	if !ts.Log().HasEntry("vision", "target_lost", "") {
		t.Fatal("expected a target_lost log entry")
	}
}

func TestAlertExpiryLeavesResidualSuspicion(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 400, 400, [2]float64{400, 400}, [2]float64{600, 400}),
	)
	g := ts.Guard(0)
	g.ForceAlert(ts.World, 500, 450)

	tick := ts.RunUntil(func(*TestSim) bool { return g.State() == StatePatrol }, Seconds(20))
	if tick < 0 {
		t.Fatalf("alert never wound down; log:\n%s", ts.Log().Format())
	}
	if g.Suspicion() < residualSuspicion-1e-9 {
		t.Fatalf("residual suspicion floor not applied, got %f", g.Suspicion())
	}
	if g.hasSpottedTarget {
		t.Fatal("returning to patrol should re-arm the spotted latch")
	}
}

func TestSpottedLatchRearmsAfterPatrolReturn(t *testing.T) {
	sink := &RecordingSink{}
	ts := NewTestSim(1,
		WithSink(sink),
		WithGuard(0, 100, 100),
		WithTarget(160, 100), // close range, fast detection
	)
	g := ts.Guard(0)

	if ts.RunUntil(func(*TestSim) bool { return g.State() == StateChase }, Seconds(5)) < 0 {
		t.Fatal("first episode never started")
	}

	// Target vanishes; guard winds all the way down to patrol.
	ts.World.SetTarget(nil)
	if ts.RunUntil(func(*TestSim) bool { return g.State() == StatePatrol }, Seconds(60)) < 0 {
		t.Fatalf("guard never returned to patrol, state=%s", g.State())
	}

	// Second episode fires the latch again. Spawn the new target squarely
	// in front of wherever the guard ended up facing.
	ts.World.SetTarget(NewTarget(
		g.x+40*math.Cos(g.Heading()),
		g.y+40*math.Sin(g.Heading()),
	))
	if ts.RunUntil(func(*TestSim) bool { return g.State() == StateChase }, Seconds(10)) < 0 {
		t.Fatalf("second episode never started, state=%s", g.State())
	}
	if sink.Count("spotted") != 2 {
		t.Fatalf("expected one spotted event per episode, got %d", sink.Count("spotted"))
	}
}

func TestHypnosisSuspendsPerception(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithTarget(160, 100), // close range: would detect in well under a second
	)
	g := ts.Guard(0)
	g.Hypnotize(2.0)

	ts.RunTicks(Seconds(1.5))
	if g.State() != StatePatrol || g.Suspicion() != 0 {
		t.Fatalf("hypnotized guard perceived: state=%s suspicion=%f", g.State(), g.Suspicion())
	}

	// After the overlay expires the full pipeline resumes.
	tick := ts.RunUntil(func(*TestSim) bool { return g.State() == StateChase }, Seconds(5))
	if tick < 0 {
		t.Fatalf("guard never recovered from hypnosis, state=%s", g.State())
	}
}

func TestHypnotizedGuardIgnoresAlerts(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithGuard(1, 300, 100),
	)
	a := ts.Guard(0)
	b := ts.Guard(1)
	b.Hypnotize(5.0)

	a.ForceChase(ts.World, 500, 100)
	if b.State() != StatePatrol {
		t.Fatalf("hypnotized guard acted on a broadcast, state=%s", b.State())
	}
}

package guard

import "testing"

func TestBroadcastConvergesIdlePeers(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 400, 100),
		WithGuard(1, 600, 100), // 200 away: inside the 320 comm range
		WithGuard(2, 400, 700), // 600 away: out of range
	)
	a, b, c := ts.Guard(0), ts.Guard(1), ts.Guard(2)

	a.ForceChase(ts.World, 500, 200)

	if b.State() != StateAlert {
		t.Fatalf("in-range peer should converge, state=%s", b.State())
	}
	bx, by, ok := b.LastKnownTargetPosition()
	if !ok || bx != 500 || by != 200 {
		t.Fatalf("peer should adopt the broadcast position, got (%f, %f, %v)", bx, by, ok)
	}
	if c.State() != StatePatrol {
		t.Fatalf("out-of-range guard should not hear the broadcast, state=%s", c.State())
	}
	if !ts.Log().HasEntry("comms", "broadcast_sighting", "") {
		t.Fatal("expected a broadcast_sighting log entry")
	}
}

func TestEngagedReceiversIgnoreAlerts(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 400, 100),
		WithGuard(1, 600, 100),
	)
	a, b := ts.Guard(0), ts.Guard(1)

	// B is already chasing its own contact.
	b.state = StateChase
	b.lastKnownX, b.lastKnownY = 900, 900
	b.hasLastKnown = true

	a.ForceChase(ts.World, 500, 200)

	if b.State() != StateChase {
		t.Fatalf("chasing guard downgraded by a broadcast, state=%s", b.State())
	}
	bx, by, _ := b.LastKnownTargetPosition()
	if bx != 900 || by != 900 {
		t.Fatalf("chasing guard's own intel overwritten: (%f, %f)", bx, by)
	}
}

func TestAlertReceiverRefreshesConvergencePoint(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 400, 100),
		WithGuard(1, 600, 100),
	)
	a, b := ts.Guard(0), ts.Guard(1)

	b.ForceAlert(ts.World, 900, 900)
	b.pattern = &SearchPattern{Points: [][2]float64{{900, 900}}}

	a.ForceChase(ts.World, 500, 200)

	if b.State() != StateAlert {
		t.Fatalf("alert guard should stay alert, state=%s", b.State())
	}
	bx, by, _ := b.LastKnownTargetPosition()
	if bx != 500 || by != 200 {
		t.Fatalf("alert guard should refresh to the new position, got (%f, %f)", bx, by)
	}
	if b.pattern != nil {
		t.Fatal("refreshed convergence should drop the stale sweep pattern")
	}
}

func TestRelayReachesExtendedRing(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithGuard(1, 350, 100), // 250 from A: in A's direct range
		WithGuard(2, 800, 100), // 700 from A, 450 from B: relay ring only
	)
	a, b, c := ts.Guard(0), ts.Guard(1), ts.Guard(2)

	// B is already on alert with intel of its own.
	b.state = StateAlert
	b.lastKnownX, b.lastKnownY = 500, 100
	b.hasLastKnown = true

	a.ForceChase(ts.World, 200, 200)

	if c.State() != StateAlert {
		t.Fatalf("relay should reach the patrol guard in the extended ring, state=%s", c.State())
	}
}

func TestReinforcementCallReachesWideRadius(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithGuard(1, 550, 100), // outside comm range 320, inside reinforcement 500
	)
	a, b := ts.Guard(0), ts.Guard(1)

	a.ForceChase(ts.World, 200, 200)

	if b.State() != StateAlert {
		t.Fatalf("reinforcement call should reach 450 units out, state=%s", b.State())
	}
	if !ts.Log().HasEntry("comms", "call_reinforcements", "") {
		t.Fatal("expected a call_reinforcements log entry")
	}
}

func TestReinforcementCallFiresOncePerEpisode(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
	)
	a := ts.Guard(0)

	a.ForceChase(ts.World, 200, 200)
	// Bounce through alert and back into chase within the same episode.
	a.enterAlert(ts.World, 200, 200, false)
	a.ForceChase(ts.World, 220, 220)

	if got := ts.Log().CountCategory("comms", "call_reinforcements"); got != 1 {
		t.Fatalf("expected one reinforcement call per episode, got %d", got)
	}

	// A full wind-down to patrol re-arms the call.
	a.enterAlert(ts.World, 200, 200, false)
	a.enterPatrol(ts.World)
	a.ForceChase(ts.World, 240, 240)
	if got := ts.Log().CountCategory("comms", "call_reinforcements"); got != 2 {
		t.Fatalf("expected the call to re-arm after patrol, got %d", got)
	}
}

package guard

import "testing"

func TestAttackCycleLandsHits(t *testing.T) {
	sink := &RecordingSink{}
	ts := NewTestSim(1,
		WithSink(sink),
		WithGuard(0, 100, 100),
		WithTarget(120, 100), // inside attack range from the start
	)
	g := ts.Guard(0)
	g.ForceChase(ts.World, 120, 100)

	tick := ts.RunUntil(func(*TestSim) bool { return g.State() == StateAttack }, Seconds(2))
	if tick < 0 {
		t.Fatalf("guard in contact never entered attack, state=%s", g.State())
	}

	ts.RunTicks(Seconds(1))
	if sink.Count("attack") < 1 {
		t.Fatal("expected at least one landed hit in the first second")
	}
	if !ts.Log().HasEntry("attack", "landed", "") {
		t.Fatal("expected a landed log entry")
	}
}

func TestAttackCooldownSpacesSwings(t *testing.T) {
	sink := &RecordingSink{}
	ts := NewTestSim(1,
		WithSink(sink),
		WithGuard(0, 100, 100),
		WithTarget(120, 100),
	)
	g := ts.Guard(0)
	g.ForceChase(ts.World, 120, 100)

	ts.RunTicks(Seconds(5))
	// Each cycle is windup + recovery + cooldown = 0.3 + 0.4 + 1.5 ≈ 2.2s,
	// so five seconds fits two full swings and a third at most.
	if got := sink.Count("attack"); got < 2 || got > 3 {
		t.Fatalf("expected 2-3 landed hits in 5s, got %d", got)
	}
}

func TestAttackWhiffsWhenTargetSlipsAway(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithTarget(120, 100),
	)
	g := ts.Guard(0)
	g.state = StateAttack
	g.attackPhase = AttackWindup
	g.attackTimer = g.params.AttackWindupTime // contact check on the next tick

	// Target slips out of range mid-swing.
	ts.World.Target.X = 400
	g.updateAttack(ts.World, TickDT)

	if !ts.Log().HasEntry("attack", "whiffed", "") {
		t.Fatal("expected a whiffed log entry")
	}
	if ts.Log().HasEntry("attack", "landed", "") {
		t.Fatal("a missed swing must not land")
	}
	if g.attackPhase != AttackRecovery {
		t.Fatalf("whiff still pays recovery, phase=%s", g.attackPhase)
	}
}

func TestAttackExitsToChaseWhenOutOfRange(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithTarget(120, 100),
	)
	g := ts.Guard(0)
	g.state = StateAttack
	g.attackPhase = AttackIdle
	g.cooldownTimer = g.params.AttackCooldown // idle, waiting out the cooldown

	ts.World.Target.X = 400
	g.updateAttack(ts.World, TickDT)

	if g.State() != StateChase {
		t.Fatalf("out-of-range idle attacker should resume the chase, state=%s", g.State())
	}
}

func TestAttackWithoutTargetWindsDown(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
	)
	g := ts.Guard(0)
	g.state = StateAttack
	g.lastKnownX, g.lastKnownY = 120, 100
	g.hasLastKnown = true

	g.updateAttack(ts.World, TickDT)

	if g.State() != StateAlert {
		t.Fatalf("attacker with no target should fall back to alert, state=%s", g.State())
	}
}

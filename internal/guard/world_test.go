package guard

import "testing"

func TestSpawnRegistersAndDespawnCleansUp(t *testing.T) {
	ts := NewTestSim(1,
		WithGuard(0, 100, 100),
		WithGuard(1, 300, 100),
	)
	w := ts.World

	if !w.Index.Contains(0) || !w.Index.Contains(1) {
		t.Fatal("spawned guards should be in the spatial index")
	}

	w.DespawnGuard(0)
	if w.GuardByID(0) != nil {
		t.Fatal("despawned guard still resolvable")
	}
	if w.Index.Contains(0) {
		t.Fatal("despawned guard still indexed")
	}
	if len(w.Guards) != 1 || w.Guards[0].ID() != 1 {
		t.Fatal("guard list not compacted")
	}

	// The survivor's broadcasts no longer reach the removed guard.
	w.Guards[0].ForceChase(w, 200, 200)
	if got := w.Index.QueryRadius(100, 100, 50, KindGuard); len(got) != 0 {
		t.Fatalf("removed guard still answers queries: %v", got)
	}
}

func TestSetTargetReplacesIndexEntry(t *testing.T) {
	ts := NewTestSim(1, WithTarget(100, 100))
	w := ts.World

	w.SetTarget(NewTarget(500, 500))
	if got := w.Index.QueryRadius(100, 100, 50, KindTarget); len(got) != 0 {
		t.Fatal("old target still indexed")
	}
	if got := w.Index.QueryRadius(500, 500, 50, KindTarget); len(got) != 1 {
		t.Fatal("new target not indexed")
	}

	w.SetTarget(nil)
	if got := w.Index.QueryRadius(500, 500, 50, KindTarget); len(got) != 0 {
		t.Fatal("cleared target still indexed")
	}
}

func TestRunUntilReportsTickOrMinusOne(t *testing.T) {
	ts := NewTestSim(1, WithGuard(0, 100, 100))

	tick := ts.RunUntil(func(ts *TestSim) bool {
		return ts.World.CurrentTick() >= 10
	}, 100)
	if tick != 10 {
		t.Fatalf("expected predicate to hold at tick 10, got %d", tick)
	}

	if got := ts.RunUntil(func(*TestSim) bool { return false }, 5); got != -1 {
		t.Fatalf("unsatisfied predicate should return -1, got %d", got)
	}
}

func TestSecondsConversion(t *testing.T) {
	if Seconds(1) != 60 {
		t.Fatalf("Seconds(1) = %d, want 60", Seconds(1))
	}
	if Seconds(0.5) != 30 {
		t.Fatalf("Seconds(0.5) = %d, want 30", Seconds(0.5))
	}
}

func TestVerboseLoggingAddsPerTickEntries(t *testing.T) {
	ts := NewTestSim(1,
		WithVerbose(true),
		WithGuard(0, 100, 100),
	)
	ts.RunTicks(3)

	if got := ts.Log().CountCategory("suspicion", "level"); got != 3 {
		t.Fatalf("expected one suspicion sample per tick, got %d", got)
	}

	quiet := NewTestSim(1, WithGuard(0, 100, 100))
	quiet.RunTicks(3)
	if got := quiet.Log().CountCategory("suspicion", "level"); got != 0 {
		t.Fatalf("verbose entries leaked into a quiet log: %d", got)
	}
}

func TestDemoWorldIsWellFormed(t *testing.T) {
	w := NewDemoWorld(1)
	if len(w.Guards) != 3 || w.Target == nil || w.Grid == nil {
		t.Fatal("demo scene missing actors or grid")
	}
	w.RunTicks(600)
	for _, g := range w.Guards {
		if g.Suspicion() < 0 || g.Suspicion() > 1 {
			t.Fatalf("demo scene violated suspicion bounds: %f", g.Suspicion())
		}
	}
}

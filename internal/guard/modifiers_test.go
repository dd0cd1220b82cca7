package guard

import (
	"math"
	"testing"
)

func TestModifierAppliesAgainstBase(t *testing.T) {
	ts := NewTestSim(1, WithGuard(0, 100, 100))
	g := ts.Guard(0)
	base := g.BaseParams().ViewDistance

	g.ApplyModifier("difficulty", ModViewDistance, 1.2, 0)
	if got := g.Params().ViewDistance; math.Abs(got-base*1.2) > 1e-9 {
		t.Fatalf("view distance = %f, want %f", got, base*1.2)
	}

	// Re-applying the same key replaces; it must not compound.
	g.ApplyModifier("difficulty", ModViewDistance, 1.2, 0)
	if got := g.Params().ViewDistance; math.Abs(got-base*1.2) > 1e-9 {
		t.Fatalf("re-apply compounded: %f, want %f", got, base*1.2)
	}

	g.RemoveModifier("difficulty")
	if got := g.Params().ViewDistance; got != base {
		t.Fatalf("remove should restore the base, got %f", got)
	}
}

func TestModifiersStackAcrossKeys(t *testing.T) {
	ts := NewTestSim(1, WithGuard(0, 100, 100))
	g := ts.Guard(0)
	base := g.BaseParams().DetectionTime

	g.ApplyModifier("difficulty", ModDetectionTime, 0.5, 0)
	g.ApplyModifier("weather", ModDetectionTime, 2.0, 0)
	if got := g.Params().DetectionTime; math.Abs(got-base) > 1e-9 {
		t.Fatalf("0.5 x 2.0 should cancel out, got %f want %f", got, base)
	}

	// Detection-time scaling covers all three detection constants.
	g.RemoveModifier("weather")
	p := g.Params()
	b := g.BaseParams()
	if p.CloseRangeDetectionTime != b.CloseRangeDetectionTime*0.5 ||
		p.PeripheralDetectionTime != b.PeripheralDetectionTime*0.5 {
		t.Fatal("detection-time modifier should scale all detection constants")
	}
}

func TestTimedModifierExpires(t *testing.T) {
	ts := NewTestSim(1, WithGuard(0, 100, 100))
	g := ts.Guard(0)
	base := g.BaseParams().PatrolSpeed

	g.ApplyModifier("sugar-rush", ModPatrolSpeed, 2.0, 0.5)
	if g.Params().PatrolSpeed != base*2 {
		t.Fatal("timed modifier not applied")
	}

	ts.RunTicks(Seconds(0.4))
	if g.Params().PatrolSpeed != base*2 {
		t.Fatal("modifier expired early")
	}

	ts.RunTicks(Seconds(0.2))
	if g.Params().PatrolSpeed != base {
		t.Fatalf("modifier should have expired, speed=%f", g.Params().PatrolSpeed)
	}
}

func TestSoundRangeModifierCoversAllRanges(t *testing.T) {
	ts := NewTestSim(1, WithGuard(0, 100, 100))
	g := ts.Guard(0)
	b := g.BaseParams()

	g.ApplyModifier("earmuffs", ModSoundDetectionRange, 0.5, 0)
	p := g.Params()
	if p.SoundDetectionRange != b.SoundDetectionRange*0.5 ||
		p.WalkingSoundRange != b.WalkingSoundRange*0.5 ||
		p.RunningSoundRange != b.RunningSoundRange*0.5 {
		t.Fatal("sound modifier should scale every hearing range")
	}
}

func TestInvalidModifierFactorIgnored(t *testing.T) {
	ts := NewTestSim(1, WithGuard(0, 100, 100))
	g := ts.Guard(0)

	g.ApplyModifier("broken", ModViewDistance, 0, 0)
	g.ApplyModifier("negative", ModViewDistance, -2, 0)
	if g.Params().ViewDistance != g.BaseParams().ViewDistance {
		t.Fatal("non-positive factors must be rejected")
	}
}

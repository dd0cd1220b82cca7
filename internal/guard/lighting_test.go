package guard

import (
	"math"
	"testing"
)

func TestIlluminationNoLightsIsMoonlight(t *testing.T) {
	lf := NewLightField(nil)
	if got := lf.IlluminationAt(100, 100); got != unlitDefaultIllumination {
		t.Fatalf("no-lights scene should read %.1f, got %f", unlitDefaultIllumination, got)
	}
}

func TestIlluminationFallsOffWithDistance(t *testing.T) {
	lf := NewLightField([]Light{{X: 0, Y: 0, Intensity: 1.0, Range: 200, Lit: true}})

	at := lf.IlluminationAt(0, 0)
	if math.Abs(at-1.0) > 1e-9 {
		t.Fatalf("directly under the light should be 1.0, got %f", at)
	}

	mid := lf.IlluminationAt(100, 0)
	if math.Abs(mid-0.5) > 1e-9 {
		t.Fatalf("halfway out should be 0.5, got %f", mid)
	}

	// Beyond range the darkness floor holds.
	far := lf.IlluminationAt(350, 0)
	if far != darknessFloor {
		t.Fatalf("beyond range should be the darkness floor %.1f, got %f", darknessFloor, far)
	}
}

func TestIlluminationSumsAndClamps(t *testing.T) {
	lf := NewLightField([]Light{
		{X: 0, Y: 0, Intensity: 1.0, Range: 200, Lit: true},
		{X: 10, Y: 0, Intensity: 1.0, Range: 200, Lit: true},
	})
	if got := lf.IlluminationAt(5, 0); got != 1.0 {
		t.Fatalf("overlapping lights should clamp to 1.0, got %f", got)
	}
}

func TestUnlitLightsAreIgnored(t *testing.T) {
	lf := NewLightField([]Light{{X: 0, Y: 0, Intensity: 1.0, Range: 200, Lit: false}})
	if got := lf.IlluminationAt(0, 0); got != darknessFloor {
		t.Fatalf("unlit light should not contribute, got %f", got)
	}
	lf.SetLit(0, true)
	if got := lf.IlluminationAt(0, 0); got != 1.0 {
		t.Fatalf("after SetLit the light should contribute, got %f", got)
	}
	// Out-of-range index is a no-op.
	lf.SetLit(5, true)
}

package guard

const (
	// Illumination with no lights placed at all (moonlight baseline).
	unlitDefaultIllumination = 0.6
	// Guards train for night work: detection never degrades below this.
	darknessFloor = 0.4

	lightQueryRadius = 400.0
)

// Light is a static point light contributing to target visibility.
type Light struct {
	X, Y      float64
	Intensity float64
	Range     float64
	Lit       bool
}

// LightField answers "how visible is a point" queries for the detection model.
type LightField struct {
	lights []Light
}

func NewLightField(lights []Light) *LightField {
	return &LightField{lights: lights}
}

// LightsNear returns all lit lights within radius of (x,y).
func (lf *LightField) LightsNear(x, y, radius float64) []Light {
	var out []Light
	for _, l := range lf.lights {
		if !l.Lit {
			continue
		}
		if dist(x, y, l.X, l.Y) <= radius {
			out = append(out, l)
		}
	}
	return out
}

// SetLit toggles the light at index i. Out-of-range indices are ignored.
func (lf *LightField) SetLit(i int, lit bool) {
	if i < 0 || i >= len(lf.lights) {
		return
	}
	lf.lights[i].Lit = lit
}

// Lights returns the full light list (for rendering).
func (lf *LightField) Lights() []Light {
	return lf.lights
}

// IlluminationAt computes the lighting modifier at a point: the sum of
// nearby contributions intensity*(1 - d/range), clamped to [0,1]. A scene
// with no lights at all reads as dim moonlight rather than pitch black, and
// the darkness floor keeps detection times bounded.
func (lf *LightField) IlluminationAt(x, y float64) float64 {
	if lf == nil || len(lf.lights) == 0 {
		return unlitDefaultIllumination
	}
	sum := 0.0
	for _, l := range lf.LightsNear(x, y, lightQueryRadius) {
		if l.Range <= 0 {
			continue
		}
		d := dist(x, y, l.X, l.Y)
		if d >= l.Range {
			continue
		}
		sum += l.Intensity * (1.0 - d/l.Range)
	}
	sum = clamp01(sum)
	if sum < darknessFloor {
		return darknessFloor
	}
	return sum
}

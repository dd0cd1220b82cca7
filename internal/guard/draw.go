package guard

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func stateColor(s GuardState) color.RGBA {
	switch s {
	case StatePatrol:
		return color.RGBA{R: 60, G: 170, B: 70, A: 255}
	case StateChase:
		return color.RGBA{R: 220, G: 40, B: 40, A: 255}
	case StateAttack:
		return color.RGBA{R: 255, G: 120, B: 0, A: 255}
	case StateAlert:
		return color.RGBA{R: 230, G: 200, B: 40, A: 255}
	case StateSearch:
		return color.RGBA{R: 80, G: 140, B: 230, A: 255}
	default:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
}

// Draw renders the guard as a state-colored circle with heading line,
// vision cone, and flashlight beam.
func (g *Guard) Draw(screen *ebiten.Image) {
	c := stateColor(g.state)
	if g.hypnotized {
		c = color.RGBA{R: 170, G: 80, B: 200, A: 255}
	}

	g.drawCone(screen, g.params.FieldOfView, g.params.ViewDistance,
		color.RGBA{R: c.R, G: c.G, B: c.B, A: 28})
	if g.params.PeripheralVision {
		g.drawCone(screen, g.params.PeripheralVisionAngle, g.params.ViewDistance*0.6,
			color.RGBA{R: c.R, G: c.G, B: c.B, A: 12})
	}
	if g.flashlightOn {
		g.drawCone(screen, g.params.FlashlightAngle, g.params.FlashlightRange,
			color.RGBA{R: 255, G: 250, B: 170, A: 40})
	}

	vector.DrawFilledCircle(screen, float32(g.x), float32(g.y), guardRadius, c, true)

	// Detection progress ring while the guard is closing in on a spot.
	if g.detectionProgress > 0 && g.detectionProgress < 1 {
		vector.StrokeCircle(screen, float32(g.x), float32(g.y), guardRadius+3,
			1.5, color.RGBA{R: 255, G: 255, B: 255, A: uint8(60 + 180*g.detectionProgress)}, true)
	}

	hLen := float64(guardRadius) * 2.0
	hx := g.x + math.Cos(g.heading)*hLen
	hy := g.y + math.Sin(g.heading)*hLen
	ebitenutil.DrawLine(screen, g.x, g.y, hx, hy, color.RGBA{R: 255, G: 255, B: 255, A: 160})
}

// drawCone approximates a filled view cone with radial lines.
func (g *Guard) drawCone(screen *ebiten.Image, arc, length float64, c color.RGBA) {
	const steps = 14
	half := arc / 2
	for i := 0; i <= steps; i++ {
		a := g.heading - half + arc*float64(i)/steps
		ex := g.x + math.Cos(a)*length
		ey := g.y + math.Sin(a)*length
		ebitenutil.DrawLine(screen, g.x, g.y, ex, ey, c)
	}
}

// DrawWorld renders the static scene: buildings, lights, and the target.
func DrawWorld(screen *ebiten.Image, w *World) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 24, A: 255})

	for _, l := range w.Lights.Lights() {
		if !l.Lit {
			continue
		}
		vector.DrawFilledCircle(screen, float32(l.X), float32(l.Y), float32(l.Range),
			color.RGBA{R: 255, G: 240, B: 180, A: 14}, true)
		vector.DrawFilledCircle(screen, float32(l.X), float32(l.Y), 4,
			color.RGBA{R: 255, G: 240, B: 180, A: 220}, true)
	}

	for _, b := range w.Buildings() {
		vector.FillRect(screen, float32(b[0]), float32(b[1]), float32(b[2]), float32(b[3]),
			color.RGBA{R: 55, G: 58, B: 66, A: 255}, false)
	}

	for _, g := range w.Guards {
		g.Draw(screen)
	}

	if t := w.Target; t != nil {
		tc := color.RGBA{R: 120, G: 220, B: 255, A: 255}
		r := float32(5)
		if t.Crouched {
			r = 3.5
		}
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), r, tc, true)
	}
}

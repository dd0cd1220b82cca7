package guard

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPanelWidth = 300
	hudLineHeight = 14
)

var hudTitleFace = text.NewGoXFace(basicfont.Face7x13)

func drawTitle(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 230, B: 140, A: 255})
	text.Draw(screen, s, hudTitleFace, op)
}

func drawBar(screen *ebiten.Image, x, y, w, h int, frac float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h),
		color.RGBA{R: 40, G: 42, B: 48, A: 220}, false)
	fill := float32(float64(w) * clamp01(frac))
	vector.FillRect(screen, float32(x), float32(y), fill, float32(h), c, false)
}

// DrawHUD renders the status bar and, when a guard is selected, the
// inspector panel with its thought log.
func (a *App) DrawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("tick=%d  speed=%.2gx  [space] pause  [+/-] speed  [click] inspect  [C] copy report  [H] hypnotize  [R] reset",
		a.world.CurrentTick(), a.simSpeed)
	if a.paused {
		status = "PAUSED  " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 6, 2)
	if a.copyFlash > 0 {
		ebitenutil.DebugPrintAt(screen, "report copied to clipboard", 6, 18)
	}

	g := a.world.GuardByID(a.selectedID)
	if g == nil {
		return
	}

	px := a.world.Width - hudPanelWidth
	vector.FillRect(screen, float32(px), 0, hudPanelWidth, float32(a.world.Height),
		color.RGBA{R: 12, G: 13, B: 16, A: 215}, false)

	lx := px + 10
	ly := 8
	drawTitle(screen, fmt.Sprintf("GUARD %s — %s", g.label, g.state), lx, ly)
	ly += hudLineHeight + 8

	ebitenutil.DebugPrintAt(screen, "suspicion", lx, ly)
	drawBar(screen, lx+80, ly+3, 180, 8, g.suspicion,
		color.RGBA{R: 230, G: 200, B: 40, A: 255})
	ly += hudLineHeight

	ebitenutil.DebugPrintAt(screen, "detection", lx, ly)
	drawBar(screen, lx+80, ly+3, 180, 8, g.detectionProgress,
		color.RGBA{R: 220, G: 60, B: 60, A: 255})
	ly += hudLineHeight + 4

	lines := []string{
		fmt.Sprintf("pos: (%.0f, %.0f)  heading: %.2f", g.x, g.y, g.heading),
		fmt.Sprintf("sees target: %v  flashlight: %v", g.seesTarget, g.flashlightOn),
		fmt.Sprintf("lost: %.1fs  persist: %.1fs  alert: %.1fs",
			g.lostTimer, g.persistentChaseTimer, g.alertTimer),
	}
	if g.hasLastKnown {
		lines = append(lines, fmt.Sprintf("last known: (%.0f, %.0f)", g.lastKnownX, g.lastKnownY))
	}
	if g.hypnotized {
		lines = append(lines, fmt.Sprintf("HYPNOTIZED %.1fs", g.hypnosisTimer))
	}
	if g.state == StateAttack {
		lines = append(lines, fmt.Sprintf("attack: %s  cooldown: %.2fs", g.attackPhase, g.cooldownTimer))
	}
	if g.pattern != nil {
		lines = append(lines, fmt.Sprintf("search: point %d/%d", g.pattern.Index, len(g.pattern.Points)))
	}
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, lx, ly)
		ly += hudLineHeight
	}

	ly += 6
	drawTitle(screen, "THOUGHT LOG", lx, ly)
	ly += hudLineHeight + 6
	for _, t := range g.thoughts.Recent() {
		if ly > a.world.Height-hudLineHeight {
			break
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("T=%04d %s", t.Tick, t.Message), lx, ly)
		ly += hudLineHeight
	}
}

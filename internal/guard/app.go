package guard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	minSimSpeed = 0.25
	maxSimSpeed = 8.0

	hypnotizeDuration = 5.0 // seconds, [H] debug key
	selectPickRadius  = 18.0
)

// App is the windowed front end: it owns a World and drives it at a
// user-adjustable multiple of the fixed tick rate. All simulation state
// lives in the World; App only holds presentation and input state.
type App struct {
	world *World
	seed  int64

	paused    bool
	simSpeed  float64
	tickAccum float64

	selectedID int
	copyFlash  int // frames left to show the "copied" notice

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// NewApp builds the demo scene with the given seed.
func NewApp(seed int64) *App {
	return &App{
		world:      NewDemoWorld(seed),
		seed:       seed,
		simSpeed:   1.0,
		selectedID: -1,
		prevKeys:   make(map[ebiten.Key]bool),
	}
}

// World exposes the running world (the headless reporter shares it).
func (a *App) World() *World { return a.world }

func (a *App) Update() error {
	a.handleInput()

	if a.copyFlash > 0 {
		a.copyFlash--
	}

	if !a.paused {
		a.tickAccum += a.simSpeed
		for a.tickAccum >= 1 {
			a.world.Tick()
			a.tickAccum--
		}
	}
	return nil
}

func (a *App) handleInput() {
	currentKeys := make(map[ebiten.Key]bool)
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	if pressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if pressed(ebiten.KeyEqual) {
		a.simSpeed = math.Min(a.simSpeed*2, maxSimSpeed)
	}
	if pressed(ebiten.KeyMinus) {
		a.simSpeed = math.Max(a.simSpeed/2, minSimSpeed)
	}
	if pressed(ebiten.KeyR) {
		a.world = NewDemoWorld(a.seed)
		a.selectedID = -1
		a.tickAccum = 0
	}
	if pressed(ebiten.KeyC) {
		if err := CopyDebugReport(a.world, a.seed, a.selectedID); err == nil {
			a.copyFlash = 90
		}
	}
	if pressed(ebiten.KeyH) {
		if g := a.world.GuardByID(a.selectedID); g != nil {
			g.Hypnotize(hypnotizeDuration)
		}
	}
	if pressed(ebiten.KeyEscape) {
		a.selectedID = -1
	}

	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !a.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		a.selectGuardAt(float64(mx), float64(my))
	}
	a.prevMouseLeft = mouseLeft

	a.prevKeys = currentKeys
}

// selectGuardAt picks the closest guard within the pick radius, or
// clears the selection when the click lands on empty ground.
func (a *App) selectGuardAt(x, y float64) {
	bestID := -1
	bestDist := selectPickRadius
	for _, g := range a.world.Guards {
		d := dist(x, y, g.x, g.y)
		if d < bestDist {
			bestDist = d
			bestID = g.id
		}
	}
	a.selectedID = bestID
}

func (a *App) Draw(screen *ebiten.Image) {
	DrawWorld(screen, a.world)
	a.DrawHUD(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.world.Width, a.world.Height
}

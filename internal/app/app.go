//go:build ebiten

package app

import (
	"time"

	"life-torus/internal/core"
	"life-torus/internal/life"
	"life-torus/internal/render"
	"life-torus/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const zoomSensitivity = 0.1

// Game adapts the life engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	hudWidth int
	width    int
	height   int
	running  bool
}

// New constructs a Game around engine.
func New(engine *life.Engine, hudWidth int) *Game {
	return &Game{
		engine:   engine,
		painter:  render.NewPainter(false),
		hud:      ui.NewHUD(engine, hudWidth),
		overlay:  ui.NewOverlay(engine),
		hudWidth: hudWidth,
	}
}

// Engine exposes the wrapped engine.
func (g *Game) Engine() *life.Engine { return g.engine }

// SetSize records the window size before the first Layout call.
func (g *Game) SetSize(width, height int) {
	g.width, g.height = width, height
}

// Reset replaces the board with a fresh random one and caches it.
func (g *Game) Reset() {
	g.engine.Randomize()
	g.engine.CenterCells(g.viewport())
	g.engine.CacheInitial()
}

func (g *Game) viewport() core.Rect {
	w := g.width - g.hudWidth
	if w < 0 {
		w = 0
	}
	return core.Rect{Max: core.Point{X: float64(w), Y: float64(g.height)}}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	e := g.engine
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !g.running && e.IsInitial() {
			e.CacheInitial()
		}
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		e.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.running = false
		e.RestoreInitial()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.Clear()
	}
	cfg := e.Config()
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		e.SetBoolParameter("gridlines", !cfg.Gridlines)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		e.SetBoolParameter("toroidal", !cfg.Toroidal)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		e.SetBoolParameter("light", !cfg.LightMode)
	}
	g.handlePan(cfg)
	g.handlePointer(cfg)

	g.overlay.Update(g.viewport())
	g.hud.Update(g.width - g.hudWidth)

	if g.running {
		e.Advance(time.Now())
	}
	return nil
}

func (g *Game) handlePan(cfg life.Config) {
	e := g.engine
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		e.SetIntParameter("x", cfg.OffsetX-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		e.SetIntParameter("x", cfg.OffsetX+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		e.SetIntParameter("y", cfg.OffsetY-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		e.SetIntParameter("y", cfg.OffsetY+1)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		e.SetFloatParameter("cell", cfg.CellSize*(1+zoomSensitivity*dy))
	}
}

func (g *Game) handlePointer(cfg life.Config) {
	mx, my := ebiten.CursorPosition()
	pt := core.Point{X: float64(mx), Y: float64(my)}
	vp := g.viewport()
	if !vp.Contains(pt) {
		return
	}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.engine.Paint(pt, vp, true)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.engine.Paint(pt, vp, false)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.engine.Render(g.viewport()))
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.width-g.hudWidth, g.height)
}

// Layout tracks the window size so the viewport follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

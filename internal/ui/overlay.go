//go:build ebiten

package ui

import (
	"life-torus/internal/core"
	"life-torus/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Highlighter produces marker primitives for the cell under a point.
type Highlighter interface {
	Highlight(pt core.Point, vp core.Rect) []render.Primitive
}

// Overlay marks the cell under the cursor, including its wrapped copies when
// the board is tiled. H toggles it.
type Overlay struct {
	target  Highlighter
	painter *render.Painter
	prims   []render.Primitive
	hidden  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(target Highlighter) *Overlay {
	return &Overlay{target: target, painter: render.NewPainter(false)}
}

// Update recomputes the highlight for the current cursor position.
func (o *Overlay) Update(vp core.Rect) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
	o.prims = o.prims[:0]
	if o.hidden {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := core.Point{X: float64(mx), Y: float64(my)}
	if !vp.Contains(pt) {
		return
	}
	o.prims = append(o.prims, o.target.Highlight(pt, vp)...)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.painter.Draw(screen, o.prims)
}

//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter replays primitives onto an ebiten image.
type Painter struct {
	antialias bool
}

// NewPainter constructs a Painter. Antialiasing is off by default so cell
// edges stay crisp at small sizes.
func NewPainter(antialias bool) *Painter {
	return &Painter{antialias: antialias}
}

// Draw paints prims onto dst in order.
func (p *Painter) Draw(dst *ebiten.Image, prims []Primitive) {
	for _, prim := range prims {
		switch prim.Kind {
		case KindFill:
			r := prim.Rect
			vector.DrawFilledRect(dst,
				float32(r.Min.X), float32(r.Min.Y),
				float32(r.Width()), float32(r.Height()),
				prim.Color, p.antialias)
		case KindLine:
			vector.StrokeLine(dst,
				float32(prim.From.X), float32(prim.From.Y),
				float32(prim.To.X), float32(prim.To.Y),
				float32(prim.Width), prim.Color, p.antialias)
		}
	}
}

package render

import (
	"image/color"
	"math"

	"life-torus/internal/core"
)

const (
	// CellMin is the smallest on-screen cell size.
	CellMin = 0.1
	// CellMax is the largest on-screen cell size.
	CellMax = 50.0
)

// View carries the configuration the mapper needs to project the board into a
// viewport.
type View struct {
	MapSize       int
	CellSize      float64
	OffsetX       int
	OffsetY       int
	Toroidal      bool
	ShowGridlines bool
	LightMode     bool
}

// BoardPixels returns the on-screen extent of one copy of the board.
func (v View) BoardPixels() float64 {
	return float64(v.MapSize) * v.CellSize
}

// CenterOffset returns the translation that centres the board in vp.
func (v View) CenterOffset(vp core.Rect) core.Point {
	half := v.BoardPixels() / 2
	return core.Point{X: vp.Width()/2 - half, Y: vp.Height()/2 - half}
}

// GridToScreen returns the square covering cell p.
func (v View) GridToScreen(p core.Pos, vp core.Rect) core.Rect {
	return v.cellRect(p, vp, v.CenterOffset(vp), core.Point{})
}

func (v View) cellRect(p core.Pos, vp core.Rect, co, tile core.Point) core.Rect {
	x := vp.Min.X + co.X + tile.X + float64(p.X-v.OffsetX)*v.CellSize
	y := vp.Min.Y + co.Y + tile.Y + float64(p.Y-v.OffsetY)*v.CellSize
	return core.RectFromMinSize(core.Point{X: x, Y: y}, v.CellSize, v.CellSize)
}

// ScreenToGrid resolves a screen coordinate to a cell. With toroidal display
// every visible tile folds back onto the canonical board; otherwise the raw,
// possibly out-of-board, cell is returned.
func (v View) ScreenToGrid(pt core.Point, vp core.Rect) core.Pos {
	co := v.CenterOffset(vp)
	rx := pt.X - vp.Min.X - co.X
	ry := pt.Y - vp.Min.Y - co.Y
	p := core.Pos{
		X: int(math.Floor(rx/v.CellSize)) + v.OffsetX,
		Y: int(math.Floor(ry/v.CellSize)) + v.OffsetY,
	}
	if v.Toroidal {
		return core.WrapPos(p, v.MapSize)
	}
	return p
}

// tileSpan is the inclusive range of board copies needed along one axis.
type tileSpan struct {
	start, end int
}

func (v View) tiles(vp core.Rect, co core.Point) (xs, ys tileSpan) {
	board := v.BoardPixels()
	// Screen position of cell (0, 0) in the untranslated tile.
	ox := vp.Min.X + co.X - float64(v.OffsetX)*v.CellSize
	oy := vp.Min.Y + co.Y - float64(v.OffsetY)*v.CellSize
	xs = tileSpan{
		start: int(math.Floor((vp.Min.X-ox)/board)) - 1,
		end:   int(math.Ceil((vp.Max.X-ox)/board)) + 1,
	}
	ys = tileSpan{
		start: int(math.Floor((vp.Min.Y-oy)/board)) - 1,
		end:   int(math.Ceil((vp.Max.Y-oy)/board)) + 1,
	}
	return xs, ys
}

// instances returns every visible on-screen copy of cell p.
func (v View) instances(p core.Pos, vp core.Rect, co core.Point, dst []core.Rect) []core.Rect {
	if !v.Toroidal {
		r := v.cellRect(p, vp, co, core.Point{})
		if vp.Intersects(r) {
			dst = append(dst, r)
		}
		return dst
	}
	board := v.BoardPixels()
	xs, ys := v.tiles(vp, co)
	for tx := xs.start; tx <= xs.end; tx++ {
		for ty := ys.start; ty <= ys.end; ty++ {
			tile := core.Point{X: float64(tx) * board, Y: float64(ty) * board}
			r := v.cellRect(p, vp, co, tile)
			if vp.Intersects(r) {
				dst = append(dst, r)
			}
		}
	}
	return dst
}

// CellRects projects the live cells into vp, dropping anything off-screen.
// In toroidal mode each cell appears once per visible board tile.
func (v View) CellRects(cells []core.Pos, vp core.Rect) []core.Rect {
	if !v.drawable() {
		return nil
	}
	co := v.CenterOffset(vp)
	if !v.Toroidal {
		out := make([]core.Rect, 0, len(cells))
		for _, c := range cells {
			out = v.instances(c, vp, co, out)
		}
		return out
	}
	var out []core.Rect
	board := v.BoardPixels()
	xs, ys := v.tiles(vp, co)
	for tx := xs.start; tx <= xs.end; tx++ {
		for ty := ys.start; ty <= ys.end; ty++ {
			tile := core.Point{X: float64(tx) * board, Y: float64(ty) * board}
			for _, c := range cells {
				r := v.cellRect(c, vp, co, tile)
				if vp.Intersects(r) {
					out = append(out, r)
				}
			}
		}
	}
	return out
}

// HighlightCell returns a translucent marker with an outline over every
// visible instance of p.
func (v View) HighlightCell(p core.Pos, vp core.Rect) []Primitive {
	if !v.drawable() {
		return nil
	}
	pal := PaletteFor(v.LightMode)
	rects := v.instances(p, vp, v.CenterOffset(vp), nil)
	out := make([]Primitive, 0, len(rects)*5)
	for _, r := range rects {
		out = append(out, Fill(r, pal.Highlight))
		out = append(out, outline(r, 1, pal.HighlightOutline)...)
	}
	return out
}

func outline(r core.Rect, width float64, c color.NRGBA) []Primitive {
	tl := r.Min
	tr := core.Point{X: r.Max.X, Y: r.Min.Y}
	br := r.Max
	bl := core.Point{X: r.Min.X, Y: r.Max.Y}
	return []Primitive{
		Line(tl, tr, width, c),
		Line(tr, br, width, c),
		Line(br, bl, width, c),
		Line(bl, tl, width, c),
	}
}

func (v View) drawable() bool {
	return v.MapSize > 0 && v.CellSize > 0
}

package render

import (
	"math"

	"life-torus/internal/core"
)

const (
	minStroke = 0.1
	maxStroke = 1.5
)

// StrokeWidth eases gridline thickness with zoom: thinnest at CellMin,
// thickest past CellMax, linear in between.
func StrokeWidth(cellSize float64) float64 {
	if cellSize <= CellMin {
		return minStroke
	}
	if cellSize > CellMax {
		return maxStroke
	}
	t := (cellSize - CellMin) / (CellMax - CellMin)
	return minStroke + t*(maxStroke-minStroke)
}

// Gridlines returns vertical then horizontal lines spaced one cell apart
// across vp. Two extra lines per axis cover partial cells at the edges.
func (v View) Gridlines(vp core.Rect) []Primitive {
	cs := v.CellSize
	if cs <= 0 {
		return nil
	}
	stroke := StrokeWidth(cs)
	col := PaletteFor(v.LightMode).Grid

	offX := math.Mod(float64(v.OffsetX)*cs, cs)
	offY := math.Mod(float64(v.OffsetY)*cs, cs)

	cols := int(math.Ceil(vp.Width()/cs)) + 2
	rows := int(math.Ceil(vp.Height()/cs)) + 2
	out := make([]Primitive, 0, cols+rows)

	for i := 0; i < cols; i++ {
		x := vp.Min.X + float64(i)*cs - offX
		if x < vp.Min.X-cs || x > vp.Max.X+cs {
			continue
		}
		out = append(out, Line(core.Point{X: x, Y: vp.Min.Y}, core.Point{X: x, Y: vp.Max.Y}, stroke, col))
	}
	for i := 0; i < rows; i++ {
		y := vp.Min.Y + float64(i)*cs - offY
		if y < vp.Min.Y-cs || y > vp.Max.Y+cs {
			continue
		}
		out = append(out, Line(core.Point{X: vp.Min.X, Y: y}, core.Point{X: vp.Max.X, Y: y}, stroke, col))
	}
	return out
}

// Frame assembles the full primitive list for one frame: background, cells,
// then gridlines when enabled.
func (v View) Frame(cells []core.Pos, vp core.Rect) []Primitive {
	pal := PaletteFor(v.LightMode)
	rects := v.CellRects(cells, vp)
	out := make([]Primitive, 0, len(rects)+1)
	out = append(out, Fill(vp, pal.Background))
	for _, r := range rects {
		out = append(out, Fill(r, pal.Cell))
	}
	if v.ShowGridlines {
		out = append(out, v.Gridlines(vp)...)
	}
	return out
}

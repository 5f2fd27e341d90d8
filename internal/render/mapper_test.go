package render

import (
	"testing"

	"life-torus/internal/core"
)

func testView() View {
	return View{MapSize: 10, CellSize: 10, LightMode: true}
}

func TestGridToScreenCentresBoard(t *testing.T) {
	v := testView()
	vp := core.Rect{Min: core.Point{X: 20, Y: 40}, Max: core.Point{X: 220, Y: 240}}
	got := v.GridToScreen(core.Pos{X: 0, Y: 0}, vp)
	want := core.Rect{Min: core.Point{X: 70, Y: 90}, Max: core.Point{X: 80, Y: 100}}
	if got != want {
		t.Fatalf("got %+v, expected %+v", got, want)
	}

	v.OffsetX, v.OffsetY = 2, -1
	got = v.GridToScreen(core.Pos{X: 2, Y: -1}, vp)
	if got != want {
		t.Fatalf("offset should pan the board, got %+v", got)
	}
}

func TestScreenToGridRoundTrip(t *testing.T) {
	viewports := []core.Rect{
		{Max: core.Point{X: 200, Y: 200}},
		{Min: core.Point{X: 13, Y: 7}, Max: core.Point{X: 413, Y: 117}},
		{Min: core.Point{X: -50, Y: -50}, Max: core.Point{X: 30, Y: 500}},
	}
	for _, cell := range []float64{0.1, 1, 7.3, 10, 50} {
		v := View{MapSize: 25, CellSize: cell}
		for _, vp := range viewports {
			for y := 0; y < v.MapSize; y++ {
				for x := 0; x < v.MapSize; x++ {
					p := core.Pos{X: x, Y: y}
					center := v.GridToScreen(p, vp).Center()
					if got := v.ScreenToGrid(center, vp); got != p {
						t.Fatalf("cell %v size %v viewport %+v: round trip gave %v", p, cell, vp, got)
					}
				}
			}
		}
	}
}

func TestScreenToGridWrapsWhenToroidal(t *testing.T) {
	v := testView()
	vp := core.Rect{Max: core.Point{X: 200, Y: 200}}

	// Left of the board: one cell before column 0.
	pt := core.Point{X: 45, Y: 55}
	if got := v.ScreenToGrid(pt, vp); got != (core.Pos{X: -1, Y: 0}) {
		t.Fatalf("raw hit test got %v", got)
	}
	v.Toroidal = true
	if got := v.ScreenToGrid(pt, vp); got != (core.Pos{X: 9, Y: 0}) {
		t.Fatalf("toroidal hit test got %v", got)
	}
	// A full board away still lands on the same cell.
	far := core.Point{X: pt.X + 300, Y: pt.Y - 200}
	if got := v.ScreenToGrid(far, vp); got != (core.Pos{X: 9, Y: 0}) {
		t.Fatalf("distant tile got %v", got)
	}
}

func TestCellRectsCullsOffscreen(t *testing.T) {
	v := testView()
	vp := core.Rect{Max: core.Point{X: 200, Y: 200}}
	cells := []core.Pos{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: -100, Y: 3}}
	rects := v.CellRects(cells, vp)
	if len(rects) != 1 {
		t.Fatalf("expected only the on-board cell, got %d rects", len(rects))
	}
}

func TestCellRectsTilesWhenToroidal(t *testing.T) {
	v := testView()
	v.Toroidal = true
	vp := core.Rect{Max: core.Point{X: 200, Y: 200}}
	rects := v.CellRects([]core.Pos{{X: 0, Y: 0}}, vp)

	// Board copies start every 100px from x=50, so column 0 is visible at
	// x = 50 and x = 150 on each axis.
	if len(rects) != 4 {
		t.Fatalf("expected 4 tiled instances, got %d", len(rects))
	}
	for _, r := range rects {
		if !vp.Intersects(r) {
			t.Fatalf("rect %+v outside viewport", r)
		}
	}
}

func TestToroidalTilingCoversViewport(t *testing.T) {
	var all []core.Pos
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			all = append(all, core.Pos{X: x, Y: y})
		}
	}
	cases := []struct {
		view View
		vp   core.Rect
	}{
		{
			view: View{MapSize: 4, CellSize: 5, Toroidal: true},
			vp:   core.Rect{Min: core.Point{X: 3, Y: 3}, Max: core.Point{X: 97, Y: 61}},
		},
		{
			view: View{MapSize: 4, CellSize: 5, Toroidal: true, OffsetX: 37, OffsetY: -90},
			vp:   core.Rect{Min: core.Point{X: 500, Y: 300}, Max: core.Point{X: 640, Y: 360}},
		},
	}
	for _, c := range cases {
		rects := c.view.CellRects(all, c.vp)
		covered := func(pt core.Point) bool {
			for _, r := range rects {
				if r.Contains(pt) {
					return true
				}
			}
			return false
		}
		for y := c.vp.Min.Y; y < c.vp.Max.Y; y += 2.5 {
			for x := c.vp.Min.X; x < c.vp.Max.X; x += 2.5 {
				if !covered(core.Point{X: x, Y: y}) {
					t.Fatalf("view %+v: point (%v,%v) not covered by any tile", c.view, x, y)
				}
			}
		}
	}
}

func TestHighlightCell(t *testing.T) {
	v := testView()
	vp := core.Rect{Max: core.Point{X: 200, Y: 200}}
	prims := v.HighlightCell(core.Pos{X: 1, Y: 1}, vp)
	if len(prims) != 5 {
		t.Fatalf("expected fill plus 4 outline segments, got %d", len(prims))
	}
	if prims[0].Kind != KindFill || prims[0].Color != PaletteFor(true).Highlight {
		t.Fatalf("first primitive should be the highlight fill, got %+v", prims[0])
	}

	v.Toroidal = true
	if got := len(v.HighlightCell(core.Pos{X: 1, Y: 1}, vp)); got <= 5 {
		t.Fatalf("toroidal highlight should mark several tiles, got %d primitives", got)
	}
}

func TestDegenerateViewDrawsNothing(t *testing.T) {
	v := View{MapSize: 0, CellSize: 10, Toroidal: true}
	vp := core.Rect{Max: core.Point{X: 100, Y: 100}}
	if rects := v.CellRects([]core.Pos{{}}, vp); rects != nil {
		t.Fatalf("expected no rects, got %v", rects)
	}
}

package render

import (
	"math"
	"testing"

	"life-torus/internal/core"
)

func TestStrokeWidthEasing(t *testing.T) {
	if got := StrokeWidth(CellMin); got != minStroke {
		t.Fatalf("at CellMin expected %v, got %v", minStroke, got)
	}
	if got := StrokeWidth(0.01); got != minStroke {
		t.Fatalf("below CellMin expected %v, got %v", minStroke, got)
	}
	if got := StrokeWidth(CellMax + 1); got != maxStroke {
		t.Fatalf("above CellMax expected %v, got %v", maxStroke, got)
	}
	if got := StrokeWidth(CellMax); math.Abs(got-maxStroke) > 1e-9 {
		t.Fatalf("at CellMax expected %v, got %v", maxStroke, got)
	}
	mid := (CellMin + CellMax) / 2
	if got := StrokeWidth(mid); math.Abs(got-(minStroke+maxStroke)/2) > 1e-9 {
		t.Fatalf("midpoint expected %v, got %v", (minStroke+maxStroke)/2, got)
	}
	prev := 0.0
	for c := 0.0; c < 60; c += 0.5 {
		w := StrokeWidth(c)
		if w < prev {
			t.Fatalf("stroke width decreased at %v", c)
		}
		prev = w
	}
}

func TestGridlinesCoverViewport(t *testing.T) {
	v := View{MapSize: 10, CellSize: 10}
	vp := core.Rect{Min: core.Point{X: 10, Y: 20}, Max: core.Point{X: 110, Y: 70}}
	lines := v.Gridlines(vp)

	var vertical, horizontal int
	for _, l := range lines {
		if l.Kind != KindLine {
			t.Fatalf("unexpected primitive %+v", l)
		}
		if l.Width != StrokeWidth(10) {
			t.Fatalf("unexpected stroke %v", l.Width)
		}
		switch {
		case l.From.X == l.To.X:
			vertical++
		case l.From.Y == l.To.Y:
			horizontal++
		}
	}
	wantV := int(math.Ceil(100.0/10)) + 2
	wantH := int(math.Ceil(50.0/10)) + 2
	if vertical != wantV || horizontal != wantH {
		t.Fatalf("got %d vertical and %d horizontal, expected %d and %d", vertical, horizontal, wantV, wantH)
	}
	last := lines[vertical-1].From.X
	if last < vp.Max.X {
		t.Fatalf("vertical lines stop at %v before the right edge %v", last, vp.Max.X)
	}
}

func TestFrameOrdersPrimitives(t *testing.T) {
	v := View{MapSize: 10, CellSize: 10, ShowGridlines: true}
	vp := core.Rect{Max: core.Point{X: 100, Y: 100}}
	prims := v.Frame([]core.Pos{{X: 3, Y: 3}}, vp)
	if prims[0].Kind != KindFill || prims[0].Color != PaletteFor(false).Background {
		t.Fatalf("frame should start with the background, got %+v", prims[0])
	}
	if prims[1].Kind != KindFill || prims[1].Color != PaletteFor(false).Cell {
		t.Fatalf("cells follow the background, got %+v", prims[1])
	}
	for _, p := range prims[2:] {
		if p.Kind != KindLine {
			t.Fatalf("gridlines come last, got %+v", p)
		}
	}
}

package render

import (
	"image/color"
	"testing"

	"life-torus/internal/core"
)

func TestRasterizeFrame(t *testing.T) {
	v := View{MapSize: 4, CellSize: 5, LightMode: true}
	vp := core.Rect{Max: core.Point{X: 20, Y: 20}}
	img := Rasterize(v.Frame([]core.Pos{{X: 1, Y: 2}}, vp), 20, 20)

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.RGBAAt(7, 12); got != black {
		t.Fatalf("live cell pixel %v, expected black", got)
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Fatalf("background pixel %v, expected white", got)
	}
}

func TestRasterizeLine(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	prims := []Primitive{
		Line(core.Point{X: 5, Y: 0}, core.Point{X: 5, Y: 10}, 1, red),
		Line(core.Point{X: 0, Y: 0}, core.Point{X: 9, Y: 9}, 1, red),
	}
	img := Rasterize(prims, 10, 10)
	if got := img.RGBAAt(5, 7); got.R != 255 {
		t.Fatalf("vertical line missing at (5,7): %v", got)
	}
	if got := img.RGBAAt(3, 3); got.R != 255 {
		t.Fatalf("diagonal line missing at (3,3): %v", got)
	}
	if got := img.RGBAAt(0, 9); got.A != 0 {
		t.Fatalf("untouched pixel should stay transparent, got %v", got)
	}
}

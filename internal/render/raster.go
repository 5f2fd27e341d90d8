package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Rasterize paints prims into a new RGBA image of the given size. It is the
// headless counterpart of Painter and is used for snapshots and tests.
func Rasterize(prims []Primitive, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, p := range prims {
		switch p.Kind {
		case KindFill:
			fillRect(img, pixelRect(p.Rect.Min.X, p.Rect.Min.Y, p.Rect.Max.X, p.Rect.Max.Y), p)
		case KindLine:
			strokeLine(img, p)
		}
	}
	return img
}

func pixelRect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
}

func fillRect(img *image.RGBA, r image.Rectangle, p Primitive) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(p.Color), image.Point{}, draw.Over)
}

func strokeLine(img *image.RGBA, p Primitive) {
	half := math.Max(p.Width, 1) / 2
	dx := p.To.X - p.From.X
	dy := p.To.Y - p.From.Y
	if dx == 0 || dy == 0 {
		x0, x1 := math.Min(p.From.X, p.To.X), math.Max(p.From.X, p.To.X)
		y0, y1 := math.Min(p.From.Y, p.To.Y), math.Max(p.From.Y, p.To.Y)
		fillRect(img, pixelRect(x0-half, y0-half, x1+half, y1+half), p)
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := p.From.X + dx*t
		y := p.From.Y + dy*t
		fillRect(img, pixelRect(x-half, y-half, x+half, y+half), p)
	}
}

package render

import (
	"image/color"

	"life-torus/internal/core"
)

// Kind distinguishes the two primitive shapes a sink has to support.
type Kind uint8

const (
	// KindFill is a filled axis-aligned rectangle.
	KindFill Kind = iota
	// KindLine is a stroked segment between two points.
	KindLine
)

// Primitive is one draw instruction handed to an external sink.
type Primitive struct {
	Kind  Kind
	Rect  core.Rect
	From  core.Point
	To    core.Point
	Width float64
	Color color.NRGBA
}

// Fill returns a filled rectangle primitive.
func Fill(r core.Rect, c color.NRGBA) Primitive {
	return Primitive{Kind: KindFill, Rect: r, Color: c}
}

// Line returns a line segment primitive.
func Line(from, to core.Point, width float64, c color.NRGBA) Primitive {
	return Primitive{Kind: KindLine, From: from, To: to, Width: width, Color: c}
}

// Palette holds the colours used for one theme.
type Palette struct {
	Background       color.NRGBA
	Cell             color.NRGBA
	Grid             color.NRGBA
	Highlight        color.NRGBA
	HighlightOutline color.NRGBA
}

var (
	lightPalette = Palette{
		Background:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Cell:             color.NRGBA{A: 255},
		Grid:             color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		Highlight:        color.NRGBA{G: 100, B: 255, A: 100},
		HighlightOutline: color.NRGBA{G: 100, B: 255, A: 255},
	}
	darkPalette = Palette{
		Background:       color.NRGBA{A: 255},
		Cell:             color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:             color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		Highlight:        color.NRGBA{R: 100, G: 150, B: 255, A: 100},
		HighlightOutline: color.NRGBA{G: 100, B: 255, A: 255},
	}
)

// PaletteFor returns the light or dark theme.
func PaletteFor(light bool) Palette {
	if light {
		return lightPalette
	}
	return darkPalette
}

//go:build !ebiten

package ui

import (
	"life-torus/internal/core"
	"life-torus/internal/render"
)

// Highlighter produces marker primitives for the cell under a point.
type Highlighter interface {
	Highlight(pt core.Point, vp core.Rect) []render.Primitive
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Highlighter) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(core.Rect) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}

//go:build !ebiten

package ui

import "life-torus/internal/core"

// Target is what the HUD inspects and adjusts.
type Target interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Target, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

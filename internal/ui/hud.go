//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"life-torus/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Target is what the HUD inspects and adjusts.
type Target interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
}

// statusKeys are read-only values shown under the controls.
var statusKeys = []string{"generation", "population", "toroidal", "gridlines"}

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	target     Target
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for target with the given panel width. A
// non-positive width disables it.
func NewHUD(target Target, width int) *HUD {
	if width <= 0 || target == nil {
		return nil
	}
	h := &HUD{target: target, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	controls := target.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	if setter, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.target.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = strconv.FormatFloat(parsed, 'f', 1, 64)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	pt := image.Pt(mx-h.panelOffsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pt.In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		step := int(math.Max(1, math.Round(ctrl.Step)))
		target := state.intValue + direction*step
		if ctrl.HasMin {
			target = max(target, int(math.Round(ctrl.Min)))
		}
		if ctrl.HasMax {
			target = min(target, int(math.Round(ctrl.Max)))
		}
		if target != state.intValue {
			h.intSetter.SetIntParameter(ctrl.Key, target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		step := ctrl.Step
		if step <= 0 {
			step = 0.5
		}
		target := state.floatValue + float64(direction)*step
		if ctrl.HasMin {
			target = math.Max(target, ctrl.Min)
		}
		if ctrl.HasMax {
			target = math.Min(target, ctrl.Max)
		}
		if math.Abs(target-state.floatValue) >= 1e-9 {
			h.floatSetter.SetFloatParameter(ctrl.Key, target)
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	text.Draw(h.panel, "Life Controls", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, label)
		valueColor := label
		if !state.hasValue {
			valueColor = dim
		}
		width := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-width, y, valueColor)
		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, key := range statusKeys {
		param, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		text.Draw(h.panel, param.Label+": "+param.Value, face, panelPadding, y, dim)
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 20
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

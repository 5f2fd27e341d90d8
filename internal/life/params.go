package life

import (
	"strconv"

	"life-torus/internal/core"
	"life-torus/internal/render"
)

// Parameters reports the current configuration for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Board size", c.MapSize),
				intParam("density", "Scarcity", c.Density),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("fps", "FPS", c.FPS),
				intParam("generation", "Generation", e.stats.Generations),
				intParam("population", "Population", e.stats.Population),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				floatParam("cell", "Cell size", c.CellSize),
				intParam("x", "X offset", c.OffsetX),
				intParam("y", "Y offset", c.OffsetY),
				boolParam("toroidal", "Toroidal", c.Toroidal),
				boolParam("gridlines", "Gridlines", c.Gridlines),
				boolParam("light", "Light mode", c.LightMode),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fps", Label: "FPS", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
		{Key: "cell", Label: "Cell size", Type: core.ParamTypeFloat, Step: 0.5, Min: render.CellMin, Max: render.CellMax, HasMin: true, HasMax: true},
		{Key: "density", Label: "Scarcity", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "size", Label: "Board size", Type: core.ParamTypeInt, Step: 5, Min: 10, Max: 500, HasMin: true, HasMax: true},
		{Key: "x", Label: "X offset", Type: core.ParamTypeInt, Step: 1, Min: -1000, Max: 1000, HasMin: true, HasMax: true},
		{Key: "y", Label: "Y offset", Type: core.ParamTypeInt, Step: 1, Min: -1000, Max: 1000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting. It reports false for unknown
// keys.
func (e *Engine) SetIntParameter(key string, value int) bool {
	c := e.cfg
	switch key {
	case "size":
		c.MapSize = value
	case "density":
		c.Density = value
	case "fps":
		c.FPS = value
	case "x":
		c.OffsetX = value
	case "y":
		c.OffsetY = value
	case "seed":
		e.Reseed(int64(value))
		return true
	default:
		return false
	}
	e.SetConfig(c)
	return true
}

// SetFloatParameter updates a floating point setting.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != "cell" {
		return false
	}
	c := e.cfg
	c.CellSize = value
	e.SetConfig(c)
	return true
}

// SetBoolParameter updates a toggle.
func (e *Engine) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "toroidal":
		e.cfg.Toroidal = value
	case "gridlines":
		e.cfg.Gridlines = value
	case "light":
		e.cfg.LightMode = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

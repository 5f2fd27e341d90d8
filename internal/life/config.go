package life

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"

	"life-torus/internal/render"
)

// ErrInvalidConfig is returned when a loaded configuration is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the board and display settings. It is flat so it can be
// persisted field-for-field; live cells are never part of it.
type Config struct {
	MapSize   int     `toml:"map_size"`
	CellSize  float64 `toml:"cell_size"`
	FPS       int     `toml:"fps"`
	Density   int     `toml:"density"`
	OffsetX   int     `toml:"offset_x"`
	OffsetY   int     `toml:"offset_y"`
	Toroidal  bool    `toml:"toroidal"`
	Gridlines bool    `toml:"gridlines"`
	LightMode bool    `toml:"light_mode"`
	Seed      int64   `toml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MapSize:   75,
		CellSize:  10,
		FPS:       10,
		Density:   3,
		LightMode: true,
		Seed:      42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides fields from a string map.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MapSize = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CellSize = clampCell(parsed)
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OffsetX = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OffsetY = parsed
		}
	}
	if v, ok := cfg["toroidal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Toroidal = parsed
		}
	}
	if v, ok := cfg["gridlines"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Gridlines = parsed
		}
	}
	if v, ok := cfg["light"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.LightMode = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.MapSize < 1:
		return fmt.Errorf("%w: map_size %d < 1", ErrInvalidConfig, c.MapSize)
	case c.FPS < 1:
		return fmt.Errorf("%w: fps %d < 1", ErrInvalidConfig, c.FPS)
	case c.Density < 0:
		return fmt.Errorf("%w: density %d < 0", ErrInvalidConfig, c.Density)
	case math.IsNaN(c.CellSize) || math.IsInf(c.CellSize, 0):
		return fmt.Errorf("%w: cell_size %v", ErrInvalidConfig, c.CellSize)
	}
	return nil
}

// Normalize clamps every field into its usable range.
func (c Config) Normalize() Config {
	if c.MapSize < 1 {
		c.MapSize = 1
	}
	if c.FPS < 1 {
		c.FPS = 1
	}
	if c.Density < 0 {
		c.Density = 0
	}
	c.CellSize = clampCell(c.CellSize)
	return c
}

// View projects the display-related fields for the mapper.
func (c Config) View() render.View {
	return render.View{
		MapSize:       c.MapSize,
		CellSize:      c.CellSize,
		OffsetX:       c.OffsetX,
		OffsetY:       c.OffsetY,
		Toroidal:      c.Toroidal,
		ShowGridlines: c.Gridlines,
		LightMode:     c.LightMode,
	}
}

func clampCell(v float64) float64 {
	if math.IsNaN(v) || v < render.CellMin {
		return render.CellMin
	}
	if v > render.CellMax {
		return render.CellMax
	}
	return v
}

// LoadConfigFile reads a persisted configuration. Missing keys keep their
// defaults; unknown keys and out-of-range values are rejected.
func LoadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidConfig, keys, path)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c.Normalize(), nil
}

// SaveConfigFile writes c to path, replacing any existing file.
func SaveConfigFile(path string, c Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

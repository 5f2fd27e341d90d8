package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"life-torus/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Pattern    string
	Width      int
	Height     int
	HUDWidth   int
	Seed       int64
	Overrides  KVList

	seedSet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Height: 720, HUDWidth: 220, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(set *flag.FlagSet) {
	set.StringVar(&c.ConfigPath, "config", c.ConfigPath, "settings file (toml); saved back on exit")
	set.StringVar(&c.Pattern, "pattern", c.Pattern, "text pattern to load instead of a random board")
	set.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	set.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	set.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	set.Func("seed", "seed for random boards (default: settings file, else "+strconv.FormatInt(c.Seed, 10)+")", c.setSeed)
	set.Var(&c.Overrides, "set", "setting override in key=value form (repeatable)")
}

func (c *Config) setSeed(value string) error {
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	c.Seed = seed
	c.seedSet = true
	return nil
}

// Settings resolves the simulation configuration: the settings file when one
// exists, then an explicit -seed, then -set overrides. Without a settings
// file the default seed is Seed. A missing settings file is not an
// error; it will be created on exit.
func (c *Config) Settings(load func(string) (life.Config, error)) (life.Config, error) {
	cfg := life.DefaultConfig()
	loadedFile := false
	if c.ConfigPath != "" {
		loaded, err := load(c.ConfigPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return life.Config{}, err
		default:
			cfg = loaded
			loadedFile = true
		}
	}
	if c.seedSet || !loadedFile {
		cfg.Seed = c.Seed
	}
	cfg.Apply(c.Overrides.Map())
	if err := cfg.Validate(); err != nil {
		return life.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg.Normalize(), nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

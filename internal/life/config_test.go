package life

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"life-torus/internal/render"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"size":     "120",
		"cell":     "0.01",
		"fps":      "0",
		"density":  "5",
		"toroidal": "true",
		"x":        "-4",
		"seed":     "bogus",
	})
	if c.MapSize != 120 || c.Density != 5 || !c.Toroidal || c.OffsetX != -4 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.CellSize != render.CellMin {
		t.Fatalf("cell size should clamp to %v, got %v", render.CellMin, c.CellSize)
	}
	def := DefaultConfig()
	if c.FPS != def.FPS || c.Seed != def.Seed {
		t.Fatalf("invalid values should keep defaults: %+v", c)
	}
}

func TestConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	want := DefaultConfig()
	want.MapSize = 90
	want.Toroidal = true
	want.Gridlines = true
	want.CellSize = 12.5
	if err := SaveConfigFile(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, expected %+v", got, want)
	}
}

func TestLoadConfigFileRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("fps = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	unknown := filepath.Join(dir, "unknown.toml")
	if err := os.WriteFile(unknown, []byte("map_size = 20\ncells = [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(unknown); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown keys, got %v", err)
	}

	if _, err := LoadConfigFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestNormalizeClamps(t *testing.T) {
	c := Config{MapSize: 0, FPS: -1, Density: -2, CellSize: 99}.Normalize()
	if c.MapSize != 1 || c.FPS != 1 || c.Density != 0 || c.CellSize != render.CellMax {
		t.Fatalf("unexpected normalised config %+v", c)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-torus/internal/app"
	"life-torus/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Settings(life.LoadConfigFile)
	if err != nil {
		log.Fatal(err)
	}

	engine := life.New(settings)
	game := app.New(engine, cfg.HUDWidth)
	game.SetSize(cfg.Width, cfg.Height)
	if cfg.Pattern != "" && engine.LoadPatternFile(cfg.Pattern) {
		engine.CacheInitial()
	} else {
		game.Reset()
	}

	ebiten.SetWindowTitle("life-torus")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	if cfg.ConfigPath != "" {
		if err := life.SaveConfigFile(cfg.ConfigPath, engine.Config()); err != nil {
			log.Fatalf("saving settings: %v", err)
		}
	}
}

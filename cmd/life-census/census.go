package main

import (
	"context"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"life-torus/internal/core"
	"life-torus/internal/life"
	"life-torus/internal/render"
)

type runResult struct {
	seed        int64
	initial     int
	peak        int
	stats       life.Stats
	extinctAt   int
	stableAt    int
	generations int
}

func (r runResult) String() string {
	fate := "alive"
	switch {
	case r.extinctAt > 0:
		fate = fmt.Sprintf("extinct@%d", r.extinctAt)
	case r.stableAt > 0:
		fate = fmt.Sprintf("still@%d", r.stableAt)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d births=%d deaths=%d gens=%d %s",
		r.seed, r.initial, r.stats.Population, r.peak, r.stats.Births, r.stats.Deaths, r.generations, fate)
}

type summary struct {
	runs      int
	extinct   int
	still     int
	meanFinal float64
	maxPeak   int
	bestSeed  int64
}

func (s summary) String() string {
	return fmt.Sprintf("runs=%d extinct=%d still=%d meanFinal=%.1f maxPeak=%d (seed %d)",
		s.runs, s.extinct, s.still, s.meanFinal, s.maxPeak, s.bestSeed)
}

// outputs names the directories final boards are written to. Empty means
// skip.
type outputs struct {
	pngDir string
	txtDir string
}

func (o outputs) prepare() error {
	for _, dir := range []string{o.pngDir, o.txtDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("census: %w", err)
		}
	}
	return nil
}

func (o outputs) write(engine *life.Engine, seed int64) error {
	if o.txtDir != "" {
		if err := writePattern(engine, filepath.Join(o.txtDir, fmt.Sprintf("seed-%d.txt", seed))); err != nil {
			return err
		}
	}
	if o.pngDir != "" {
		return writeSnapshot(engine, filepath.Join(o.pngDir, fmt.Sprintf("seed-%d.png", seed)))
	}
	return nil
}

// census simulates one independent engine per seed, at most workers at a
// time, and returns the results ordered by seed.
func census(ctx context.Context, base life.Config, seeds []int64, steps, workers int, out outputs) ([]runResult, error) {
	if err := out.prepare(); err != nil {
		return nil, err
	}
	results := make([]runResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, seed := range seeds {
		g.Go(func() error {
			cfg := base
			cfg.Seed = seed
			engine := life.New(cfg)
			res, err := simulate(ctx, engine, steps)
			if err != nil {
				return err
			}
			res.seed = seed
			results[i] = res
			return out.write(engine, seed)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate randomizes engine and steps it until steps generations have run,
// the board dies out, or it stops changing.
func simulate(ctx context.Context, engine *life.Engine, steps int) (runResult, error) {
	engine.Randomize()
	engine.CacheInitial()
	res := runResult{initial: engine.Store().Len()}
	res.peak = res.initial
	for gen := 1; gen <= steps; gen++ {
		if err := ctx.Err(); err != nil {
			return runResult{}, err
		}
		report := engine.Step()
		pop := engine.Store().Len()
		res.peak = max(res.peak, pop)
		res.generations = gen
		if pop == 0 {
			res.extinctAt = gen
			break
		}
		if report.Births == 0 && report.Deaths == 0 {
			res.stableAt = gen
			break
		}
	}
	res.stats = engine.Stats()
	return res, nil
}

func summarize(results []runResult) summary {
	s := summary{runs: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		total += r.stats.Population
		if r.extinctAt > 0 {
			s.extinct++
		}
		if r.stableAt > 0 {
			s.still++
		}
	}
	best := slices.MaxFunc(results, func(a, b runResult) int { return a.peak - b.peak })
	s.maxPeak = best.peak
	s.bestSeed = best.seed
	s.meanFinal = float64(total) / float64(len(results))
	return s
}

// writePattern dumps the final board in the text pattern format, loadable
// with cmd/life -pattern.
func writePattern(engine *life.Engine, path string) error {
	text := life.FormatPattern(engine.Store().Cells(), engine.Config().MapSize)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("census: %w", err)
	}
	return nil
}

func writeSnapshot(engine *life.Engine, path string) error {
	cfg := engine.Config()
	cfg.OffsetX, cfg.OffsetY = 0, 0
	cfg.Toroidal = false
	engine.SetConfig(cfg)
	side := int(math.Ceil(float64(cfg.MapSize) * cfg.CellSize))
	vp := core.RectFromMinSize(core.Point{}, float64(side), float64(side))
	img := render.Rasterize(engine.Render(vp), side, side)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("census: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("census: encoding %s: %w", path, err)
	}
	return f.Close()
}

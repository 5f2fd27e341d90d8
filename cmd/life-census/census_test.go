package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"life-torus/internal/life"
)

func TestCensusDeterministic(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.MapSize = 24
	seeds := []int64{1, 2, 3}

	first, err := census(context.Background(), cfg, seeds, 40, 2, outputs{})
	if err != nil {
		t.Fatalf("census: %v", err)
	}
	second, err := census(context.Background(), cfg, seeds, 40, 1, outputs{})
	if err != nil {
		t.Fatalf("census: %v", err)
	}
	if len(first) != len(seeds) {
		t.Fatalf("expected %d results, got %d", len(seeds), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run %d differs between worker counts: %v vs %v", i, first[i], second[i])
		}
		if first[i].seed != seeds[i] {
			t.Fatalf("results out of order: got seed %d at %d", first[i].seed, i)
		}
	}
}

func TestSimulateStopsWhenExtinct(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.MapSize = 10
	cfg.Density = 0
	engine := life.New(cfg)
	res, err := simulate(context.Background(), engine, 50)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.initial != 0 || res.extinctAt != 1 || res.generations != 1 {
		t.Fatalf("empty board should die out on the first generation, got %+v", res)
	}
}

func TestSimulateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := simulate(ctx, life.New(life.DefaultConfig()), 10); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestSummarize(t *testing.T) {
	results := []runResult{
		{seed: 1, peak: 10, stats: life.Stats{Population: 4}, extinctAt: 0},
		{seed: 2, peak: 30, stats: life.Stats{Population: 0}, extinctAt: 7},
		{seed: 3, peak: 30, stats: life.Stats{Population: 8}, stableAt: 12},
	}
	s := summarize(results)
	if s.runs != 3 || s.extinct != 1 || s.still != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.maxPeak != 30 || s.bestSeed != 2 {
		t.Fatalf("expected first maximal peak from seed 2, got %+v", s)
	}
	if s.meanFinal != 4 {
		t.Fatalf("expected mean final population 4, got %v", s.meanFinal)
	}
	if empty := summarize(nil); empty.runs != 0 {
		t.Fatalf("expected empty summary, got %+v", empty)
	}
}

func TestCensusWritesSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := life.DefaultConfig()
	cfg.MapSize = 12
	cfg.CellSize = 4
	if _, err := census(context.Background(), cfg, []int64{5}, 3, 1, outputs{pngDir: dir}); err != nil {
		t.Fatalf("census: %v", err)
	}
	f, err := os.Open(filepath.Join(dir, "seed-5.png"))
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Fatalf("expected 48x48 snapshot, got %v", b)
	}
}

func TestCensusWritesLoadablePatterns(t *testing.T) {
	dir := t.TempDir()
	cfg := life.DefaultConfig()
	cfg.MapSize = 16
	results, err := census(context.Background(), cfg, []int64{3}, 4, 1, outputs{txtDir: dir})
	if err != nil {
		t.Fatalf("census: %v", err)
	}
	e := life.New(cfg)
	if !e.LoadPatternFile(filepath.Join(dir, "seed-3.txt")) {
		t.Fatal("pattern dump could not be loaded")
	}
	if got, want := e.Store().Len(), results[0].stats.Population; got != want {
		t.Fatalf("dumped board has %d cells, final population was %d", got, want)
	}
}

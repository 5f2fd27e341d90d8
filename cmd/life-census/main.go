package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"life-torus/internal/app"
	"life-torus/internal/life"
)

func main() {
	runs := flag.Int("runs", 16, "number of seeded boards")
	steps := flag.Int("steps", 500, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first board; later boards use consecutive seeds")
	pngDir := flag.String("png", "", "directory to write a final-board snapshot per run")
	txtDir := flag.String("txt", "", "directory to write each final board as a text pattern")
	var overrides app.KVList
	flag.Var(&overrides, "set", "setting override in key=value form (repeatable)")
	flag.Parse()

	base := life.FromMap(overrides.Map())
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}
	base = base.Normalize()

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}

	fmt.Printf("Running %d boards of %dx%d (%d workers, %d generations)\n",
		len(seeds), base.MapSize, base.MapSize, *workers, *steps)

	start := time.Now()
	results, err := census(context.Background(), base, seeds, *steps, *workers, outputs{pngDir: *pngDir, txtDir: *txtDir})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	for _, res := range results {
		fmt.Println(res)
	}
	sum := summarize(results)
	fmt.Printf("\n%s (elapsed %s)\n", sum, elapsed.Round(time.Millisecond))
}

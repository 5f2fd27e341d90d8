package life

import (
	"log"
	"math"
	"os"
	"time"

	"life-torus/internal/core"
	"life-torus/internal/render"
)

// Engine ties the store, rule evaluator, pacer and mapper together behind
// the entry points a host loop calls. It is not safe for concurrent use.
type Engine struct {
	cfg    Config
	store  *Store
	pacer  *core.Pacer
	rng    *core.RNG
	stats  Stats
	logger *log.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRNG replaces the seeded random source.
func WithRNG(r *core.RNG) Option {
	return func(e *Engine) { e.rng = r }
}

// New returns an engine with an empty board.
func New(cfg Config, opts ...Option) *Engine {
	cfg = cfg.Normalize()
	e := &Engine{
		cfg:    cfg,
		store:  NewStore(),
		pacer:  core.NewPacer(cfg.FPS),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = core.NewRNG(cfg.Seed)
	}
	return e
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetConfig installs cfg after clamping it.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg.Normalize()
	e.pacer.SetRate(e.cfg.FPS)
}

// Stats returns counters since the board was last replaced.
func (e *Engine) Stats() Stats { return e.stats }

// Interval returns the minimum spacing between generations.
func (e *Engine) Interval() time.Duration { return e.pacer.Interval() }

// Store exposes the underlying cell store.
func (e *Engine) Store() *Store { return e.store }

// Advance steps the board if the frame-rate gate allows it at now.
func (e *Engine) Advance(now time.Time) bool {
	if !e.pacer.TryAdvance(now) {
		return false
	}
	e.Step()
	return true
}

// Step advances exactly one generation regardless of pacing.
func (e *Engine) Step() StepReport {
	r := e.store.Advance(e.cfg.MapSize)
	e.stats.record(r, e.store.Len())
	return r
}

// Render returns the primitives for one frame in vp.
func (e *Engine) Render(vp core.Rect) []render.Primitive {
	return e.cfg.View().Frame(e.store.Cells().Sorted(), vp)
}

// HitTest resolves a screen position to a cell. ok is false only when the
// configuration cannot be inverted.
func (e *Engine) HitTest(pt core.Point, vp core.Rect) (core.Pos, bool) {
	if e.cfg.MapSize < 1 || e.cfg.CellSize <= 0 {
		return core.Pos{}, false
	}
	return e.cfg.View().ScreenToGrid(pt, vp), true
}

// Highlight returns marker primitives for the cell under pt.
func (e *Engine) Highlight(pt core.Point, vp core.Rect) []render.Primitive {
	p, ok := e.HitTest(pt, vp)
	if !ok {
		return nil
	}
	return e.cfg.View().HighlightCell(p, vp)
}

// Paint sets the cell under pt alive or dead. Positions off the board are
// rejected.
func (e *Engine) Paint(pt core.Point, vp core.Rect, alive bool) bool {
	p, ok := e.HitTest(pt, vp)
	if !ok || !core.InBounds(p, e.cfg.MapSize) {
		return false
	}
	if alive {
		e.store.SetAlive(p)
	} else {
		e.store.SetDead(p)
	}
	e.stats.Population = e.store.Len()
	return true
}

// Clear empties the board. The next Advance is not held back by pacing.
func (e *Engine) Clear() {
	e.store.Clear()
	e.pacer.Reset()
	e.resetStats()
}

// Randomize fills the board using the configured density.
func (e *Engine) Randomize() {
	e.store.GenerateRandom(e.cfg.MapSize, e.cfg.Density, e.rng)
	e.resetStats()
}

// Reseed replaces the random source with one seeded from seed.
func (e *Engine) Reseed(seed int64) {
	e.cfg.Seed = seed
	e.rng = core.NewRNG(seed)
}

// CacheInitial saves the board.
func (e *Engine) CacheInitial() { e.store.CacheInitial() }

// RestoreInitial reloads the saved board. The next Advance is not held back
// by pacing.
func (e *Engine) RestoreInitial() {
	e.store.RestoreInitial()
	e.pacer.Reset()
	e.resetStats()
}

// IsInitial reports whether the board has not advanced since it was cached
// or restored.
func (e *Engine) IsInitial() bool { return e.store.IsInitial() }

// SetAlive marks p alive.
func (e *Engine) SetAlive(p core.Pos) {
	e.store.SetAlive(p)
	e.stats.Population = e.store.Len()
}

// SetDead marks p dead.
func (e *Engine) SetDead(p core.Pos) {
	e.store.SetDead(p)
	e.stats.Population = e.store.Len()
}

// Toggle flips p.
func (e *Engine) Toggle(p core.Pos) {
	e.store.Toggle(p)
	e.stats.Population = e.store.Len()
}

// IsAlive reports whether p is alive.
func (e *Engine) IsAlive(p core.Pos) bool { return e.store.IsAlive(p) }

// LoadText replaces the board with a text pattern.
func (e *Engine) LoadText(lines []string) {
	e.store.LoadText(lines)
	e.resetStats()
}

// LoadPatternFile replaces the board with the pattern stored at path. Read
// failures are logged and leave the board untouched.
func (e *Engine) LoadPatternFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Printf("life: reading pattern %s: %v", path, err)
		return false
	}
	e.LoadText(SplitLines(string(data)))
	return true
}

// CenterCells sizes cells so the board fits vp and moves the pattern's
// bounding box to the middle of the board.
func (e *Engine) CenterCells(vp core.Rect) {
	size := e.cfg.MapSize
	extent := math.Min(vp.Width(), vp.Height())
	if extent > 0 {
		e.cfg.CellSize = clampCell(float64(int(extent) / size))
	}
	cells := e.store.Cells()
	if len(cells) == 0 {
		return
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for p := range cells {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	shift := core.Pos{
		X: size/2 - (minX+maxX)/2,
		Y: size/2 - (minY+maxY)/2,
	}
	moved := make(CellSet, len(cells))
	for p := range cells {
		moved[core.WrapPos(p.Add(shift), size)] = struct{}{}
	}
	e.store.Replace(moved)
}

func (e *Engine) resetStats() {
	e.stats = Stats{Population: e.store.Len()}
}

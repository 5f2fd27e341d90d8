package life

import (
	"maps"
	"slices"

	"life-torus/internal/core"
)

// CellSet is the set of live cells. Absence means dead.
type CellSet map[core.Pos]struct{}

// Has reports whether p is alive.
func (s CellSet) Has(p core.Pos) bool {
	_, ok := s[p]
	return ok
}

// Clone returns an independent copy of s.
func (s CellSet) Clone() CellSet {
	if s == nil {
		return CellSet{}
	}
	return maps.Clone(s)
}

// Sorted returns the cells ordered by row, then column.
func (s CellSet) Sorted() []core.Pos {
	out := make([]core.Pos, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b core.Pos) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Store owns the live cells and one saved snapshot of them.
//
// The initial flag is true after construction, CacheInitial and
// RestoreInitial, and is cleared only by Advance.
type Store struct {
	cells     CellSet
	initial   CellSet
	isInitial bool
}

// NewStore returns an empty store in its initial state.
func NewStore() *Store {
	return &Store{cells: CellSet{}, initial: CellSet{}, isInitial: true}
}

// Cells exposes the live set. Callers must not mutate it.
func (s *Store) Cells() CellSet { return s.cells }

// Len returns the population.
func (s *Store) Len() int { return len(s.cells) }

// IsInitial reports whether the board is still in its cached state.
func (s *Store) IsInitial() bool { return s.isInitial }

// Clear kills every cell.
func (s *Store) Clear() { s.cells = CellSet{} }

// GenerateRandom replaces the board with random cells. Each cell in
// [0, mapSize-4] on both axes draws from [0, density] and lives iff the draw
// is exactly 1, so density 0 leaves the board empty.
func (s *Store) GenerateRandom(mapSize, density int, rng *core.RNG) {
	s.Clear()
	for y := 0; y <= mapSize-4; y++ {
		for x := 0; x <= mapSize-4; x++ {
			if rng.Inclusive(density) == 1 {
				s.cells[core.Pos{X: x, Y: y}] = struct{}{}
			}
		}
	}
}

// CacheInitial saves the current board as the snapshot.
func (s *Store) CacheInitial() {
	s.initial = s.cells.Clone()
	s.isInitial = true
}

// RestoreInitial replaces the board with the snapshot.
func (s *Store) RestoreInitial() {
	s.cells = s.initial.Clone()
	s.isInitial = true
}

// Snapshot returns a copy of the saved snapshot.
func (s *Store) Snapshot() CellSet { return s.initial.Clone() }

// SetAlive marks p alive.
func (s *Store) SetAlive(p core.Pos) { s.cells[p] = struct{}{} }

// SetDead marks p dead.
func (s *Store) SetDead(p core.Pos) { delete(s.cells, p) }

// Toggle flips p.
func (s *Store) Toggle(p core.Pos) {
	if s.cells.Has(p) {
		delete(s.cells, p)
		return
	}
	s.cells[p] = struct{}{}
}

// IsAlive reports whether p is alive.
func (s *Store) IsAlive(p core.Pos) bool { return s.cells.Has(p) }

// LoadText replaces the board with the pattern in lines.
func (s *Store) LoadText(lines []string) { s.cells = ParsePattern(lines) }

// Replace installs cells as the live set.
func (s *Store) Replace(cells CellSet) { s.cells = cells }

// Advance moves the board one generation forward on a torus of mapSize.
func (s *Store) Advance(mapSize int) StepReport {
	next, report := Step(s.cells, mapSize)
	s.cells = next
	s.isInitial = false
	return report
}

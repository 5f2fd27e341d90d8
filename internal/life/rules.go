package life

import "life-torus/internal/core"

// StepReport describes one generation transition.
type StepReport struct {
	// Candidates is the number of distinct cells whose fate was evaluated.
	Candidates int
	Births     int
	Deaths     int
}

// Step computes the next B3/S23 generation of cells on a mapSize torus.
//
// Only cells adjacent to a live cell are evaluated; anything else has no live
// neighbours and cannot be born. Each candidate is evaluated once even when
// it borders several live cells.
func Step(cells CellSet, mapSize int) (CellSet, StepReport) {
	next := CellSet{}
	checked := make(map[core.Pos]struct{}, len(cells)*4)
	for cell := range cells {
		for _, off := range core.Neighbors {
			p := core.WrapNeighbor(cell.Add(off), mapSize)
			if _, seen := checked[p]; seen {
				continue
			}
			checked[p] = struct{}{}
			n := LiveNeighbors(cells, p, mapSize)
			if n == 3 || (n == 2 && cells.Has(p)) {
				next[p] = struct{}{}
			}
		}
	}

	report := StepReport{Candidates: len(checked)}
	for p := range next {
		if !cells.Has(p) {
			report.Births++
		}
	}
	for p := range cells {
		if !next.Has(p) {
			report.Deaths++
		}
	}
	return next, report
}

// LiveNeighbors counts the live cells in the Moore neighbourhood of p.
func LiveNeighbors(cells CellSet, p core.Pos, mapSize int) int {
	n := 0
	for _, off := range core.Neighbors {
		if cells.Has(core.WrapNeighbor(p.Add(off), mapSize)) {
			n++
		}
	}
	return n
}

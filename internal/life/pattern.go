package life

import (
	"strings"

	"life-torus/internal/core"
)

// ParsePattern reads the plain-text pattern format: a '#' at column i of row
// j is a live cell at (i, j). Everything else is dead.
func ParsePattern(lines []string) CellSet {
	cells := CellSet{}
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if r == '#' {
				cells[core.Pos{X: x, Y: y}] = struct{}{}
			}
			x++
		}
	}
	return cells
}

// SplitLines splits text into pattern rows.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// FormatPattern renders cells in the text format on a size x size board.
// Cells outside the board are dropped.
func FormatPattern(cells CellSet, size int) string {
	var b strings.Builder
	for y := 0; y < size; y++ {
		row := make([]byte, size)
		last := -1
		for x := 0; x < size; x++ {
			row[x] = '.'
			if cells.Has(core.Pos{X: x, Y: y}) {
				row[x] = '#'
				last = x
			}
		}
		b.Write(row[:last+1])
		b.WriteByte('\n')
	}
	return b.String()
}

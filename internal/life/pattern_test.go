package life

import (
	"maps"
	"testing"

	"life-torus/internal/core"
)

func TestParsePatternCountsRunes(t *testing.T) {
	cells := ParsePattern([]string{"é#", "x y #\r"})
	want := cellsOf(core.Pos{X: 1, Y: 0}, core.Pos{X: 4, Y: 1})
	if !maps.Equal(cells, want) {
		t.Fatalf("got %v, expected %v", cells.Sorted(), want.Sorted())
	}
}

func TestFormatPatternRoundTrip(t *testing.T) {
	glider := cellsOf(
		core.Pos{X: 1, Y: 0}, core.Pos{X: 2, Y: 1},
		core.Pos{X: 0, Y: 2}, core.Pos{X: 1, Y: 2}, core.Pos{X: 2, Y: 2},
	)
	text := FormatPattern(glider, 4)
	if text != ".#\n..#\n###\n\n" {
		t.Fatalf("unexpected text %q", text)
	}
	if got := ParsePattern(SplitLines(text)); !maps.Equal(got, glider) {
		t.Fatalf("round trip got %v", got.Sorted())
	}
}

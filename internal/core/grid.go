package core

// Pos identifies a single cell on the board. It carries no bounds of its own;
// wrapping is applied by whoever consumes it.
type Pos struct {
	X, Y int
}

// Add returns the component-wise sum of p and o.
func (p Pos) Add(o Pos) Pos { return Pos{X: p.X + o.X, Y: p.Y + o.Y} }

// Neighbors lists the eight Moore-neighbourhood offsets.
var Neighbors = [8]Pos{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// PeriodicBoundary folds a coordinate that overflowed the board by a single
// step back onto the opposite edge. Values further out are pinned to one of
// the two edges rather than wrapped, so it must only be fed neighbour offsets.
// Use Wrap for arbitrary coordinates.
func PeriodicBoundary(coord, size int) int {
	switch {
	case coord < 0:
		return size - 1
	case coord >= size:
		return 0
	default:
		return coord
	}
}

// WrapNeighbor applies PeriodicBoundary to both axes.
func WrapNeighbor(p Pos, size int) Pos {
	return Pos{X: PeriodicBoundary(p.X, size), Y: PeriodicBoundary(p.Y, size)}
}

// Wrap applies full toroidal wrapping to v on an axis of length n.
func Wrap(v, n int) int {
	if n <= 0 {
		return v
	}
	return (v%n + n) % n
}

// WrapPos applies Wrap to both axes of p.
func WrapPos(p Pos, n int) Pos {
	return Pos{X: Wrap(p.X, n), Y: Wrap(p.Y, n)}
}

// InBounds reports whether p lies on a board of the given size.
func InBounds(p Pos, size int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size && p.Y < size
}

package core

// Point is a location in drawing-surface coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in drawing-surface coordinates. Max is
// exclusive for hit testing but inclusive for intersection, matching how the
// painter clips.
type Rect struct {
	Min, Max Point
}

// RectFromMinSize builds a rectangle from its origin and extent.
func RectFromMinSize(min Point, w, h float64) Rect {
	return Rect{Min: min, Max: Point{X: min.X + w, Y: min.Y + h}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether pt lies inside r.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

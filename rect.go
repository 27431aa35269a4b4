package marker

// Rect is an axis-aligned rectangle described by its origin and extent.
// Extents are not normalized: a negative width or height is preserved
// as-is, so degenerate marker sizes round-trip unchanged.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rectangle of the given extent centered on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Min returns the origin corner of the rectangle.
func (r Rect) Min() Point {
	return Pt(r.X, r.Y)
}

// Max returns the corner opposite the origin.
func (r Rect) Max() Point {
	return Pt(r.X+r.W, r.Y+r.H)
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.X+r.W/2, r.Y+r.H/2)
}

// Contains reports whether p lies inside the rectangle, borders
// included. Only meaningful for non-negative extents.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

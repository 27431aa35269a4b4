package marker

// base carries the one piece of state every marker factory shares.
type base struct {
	size float64
}

// Size returns the configured marker size.
func (b base) Size() float64 {
	return b.size
}

// Square produces axis-aligned square markers.
type Square struct {
	base
}

// NewSquare creates a factory for square markers.
func NewSquare(opts ...Option) *Square {
	return &Square{base{applyOptions(opts).size}}
}

// CreatePoint returns the square of side Size centered on the point.
func (f *Square) CreatePoint(center Point) Shape {
	return RectShape{Rect: RectAround(center, f.size, f.size)}
}

// Circle produces circular markers, described by their bounding square
// with the circle inscribed in it.
type Circle struct {
	base
}

// NewCircle creates a factory for circle markers.
func NewCircle(opts ...Option) *Circle {
	return &Circle{base{applyOptions(opts).size}}
}

// CreatePoint returns the circle of diameter Size centered on the point.
func (f *Circle) CreatePoint(center Point) Shape {
	return OvalShape{Rect: RectAround(center, f.size, f.size)}
}

// Triangle produces upward-pointing triangle markers inscribed in the
// size box.
type Triangle struct {
	base
}

// NewTriangle creates a factory for triangle markers.
func NewTriangle(opts ...Option) *Triangle {
	return &Triangle{base{applyOptions(opts).size}}
}

// CreatePoint returns the triangle with apex at the top of the size box
// centered on the point.
func (f *Triangle) CreatePoint(center Point) Shape {
	half := f.size / 2

	path := NewPath()
	path.MoveTo(center.X, center.Y-half)
	path.LineTo(center.X+half, center.Y+half)
	path.LineTo(center.X-half, center.Y+half)
	path.Close()
	return PathShape{Path: path}
}

// Star produces four-pointed star markers: a 10-vertex alternating
// spike outline inscribed in the size box.
type Star struct {
	base
}

// NewStar creates a factory for star markers.
func NewStar(opts ...Option) *Star {
	return &Star{base{applyOptions(opts).size}}
}

// CreatePoint returns the star outline centered on the point, starting
// at the top spike and proceeding clockwise.
func (f *Star) CreatePoint(center Point) Shape {
	s := f.size

	path := NewPath()
	path.MoveTo(center.X, center.Y-s/2)
	path.LineTo(center.X+s/8, center.Y-s/8)
	path.LineTo(center.X+s/2, center.Y-s/8)
	path.LineTo(center.X+s/4, center.Y+s/8)
	path.LineTo(center.X+3*s/8, center.Y+s/2)
	path.LineTo(center.X, center.Y+s/4)
	path.LineTo(center.X-3*s/8, center.Y+s/2)
	path.LineTo(center.X-s/4, center.Y+s/8)
	path.LineTo(center.X-s/2, center.Y-s/8)
	path.LineTo(center.X-s/8, center.Y-s/8)
	path.Close()
	return PathShape{Path: path}
}

// Cross produces plus-sign markers: a 12-vertex polygon with arms
// Size/2 wide.
type Cross struct {
	base
}

// NewCross creates a factory for cross markers.
func NewCross(opts ...Option) *Cross {
	return &Cross{base{applyOptions(opts).size}}
}

// CreatePoint returns the plus-sign polygon centered on the point,
// traced notch by notch: top, right, bottom, left.
func (f *Cross) CreatePoint(center Point) Shape {
	x1 := center.X - f.size/2
	x2 := center.X - f.size/4
	x3 := center.X + f.size/4
	x4 := center.X + f.size/2

	y1 := center.Y - f.size/2
	y2 := center.Y - f.size/4
	y3 := center.Y + f.size/4
	y4 := center.Y + f.size/2

	path := NewPath()
	path.MoveTo(x2, y1)
	path.LineTo(x3, y1)
	path.LineTo(x3, y2)
	path.LineTo(x4, y2)
	path.LineTo(x4, y3)
	path.LineTo(x3, y3)
	path.LineTo(x3, y4)
	path.LineTo(x2, y4)
	path.LineTo(x2, y3)
	path.LineTo(x1, y3)
	path.LineTo(x1, y2)
	path.LineTo(x2, y2)
	path.Close()
	return PathShape{Path: path}
}

// X produces outlined X glyph markers: a 12-vertex polygon with
// diagonal strokes Size/4 thick.
type X struct {
	base
}

// NewX creates a factory for X markers.
func NewX(opts ...Option) *X {
	return &X{base{applyOptions(opts).size}}
}

// CreatePoint returns the X outline centered on the point, traced
// clockwise from the notch between the top arms.
func (f *X) CreatePoint(center Point) Shape {
	s := f.size

	path := NewPath()
	path.MoveTo(center.X, center.Y-s/8)
	path.LineTo(center.X+s/4, center.Y-s/2)
	path.LineTo(center.X+s/2, center.Y-s/2)
	path.LineTo(center.X+s/8, center.Y)
	path.LineTo(center.X+s/2, center.Y+s/2)
	path.LineTo(center.X+s/4, center.Y+s/2)
	path.LineTo(center.X, center.Y+s/8)
	path.LineTo(center.X-s/4, center.Y+s/2)
	path.LineTo(center.X-s/2, center.Y+s/2)
	path.LineTo(center.X-s/8, center.Y)
	path.LineTo(center.X-s/2, center.Y-s/2)
	path.LineTo(center.X-s/4, center.Y-s/2)
	path.Close()
	return PathShape{Path: path}
}

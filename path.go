package marker

import "math"

// Path is a polyline outline: an ordered vertex sequence plus a closed
// flag. Marker outlines are single subpaths of straight segments, so
// Path records vertices directly instead of the MoveTo/LineTo/CubicTo
// element list a general vector path needs.
type Path struct {
	vertices []Point
	closed   bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{vertices: make([]Point, 0, 12)}
}

// MoveTo starts the outline at a point.
func (p *Path) MoveTo(x, y float64) {
	p.vertices = append(p.vertices, Pt(x, y))
}

// LineTo extends the outline with a straight segment to a point.
func (p *Path) LineTo(x, y float64) {
	p.vertices = append(p.vertices, Pt(x, y))
}

// Close marks the outline as closed: the last vertex connects back to
// the first when the path is drawn.
func (p *Path) Close() {
	p.closed = true
}

// Vertices returns the outline vertices in insertion order. The slice
// is owned by the path and must not be modified.
func (p *Path) Vertices() []Point {
	return p.vertices
}

// Closed reports whether the outline is closed.
func (p *Path) Closed() bool {
	return p.closed
}

// Bounds returns the axis-aligned bounding rectangle of the vertices.
// An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	if len(p.vertices) == 0 {
		return Rect{}
	}
	min := p.vertices[0]
	max := p.vertices[0]
	for _, v := range p.vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return Rect{X: min.X, Y: min.Y, W: max.X - min.X, H: max.Y - min.Y}
}

// Translate returns a copy of the path displaced by d. The receiver is
// unchanged.
func (p *Path) Translate(d Point) *Path {
	result := &Path{
		vertices: make([]Point, len(p.vertices)),
		closed:   p.closed,
	}
	for i, v := range p.vertices {
		result.vertices[i] = v.Add(d)
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		vertices: make([]Point, len(p.vertices)),
		closed:   p.closed,
	}
	copy(result.vertices, p.vertices)
	return result
}

package marker

// Shape is a renderable marker descriptor, independent of any
// particular rendering backend. A renderer type-switches on the
// concrete type: RectShape and OvalShape are drawn from their bounding
// rectangle, PathShape from its outline.
type Shape interface {
	// Bounds returns the axis-aligned bounding rectangle of the shape.
	Bounds() Rect

	isShape()
}

// RectShape is an axis-aligned rectangle marker.
type RectShape struct {
	Rect Rect
}

// Bounds returns the rectangle itself.
func (s RectShape) Bounds() Rect { return s.Rect }

func (RectShape) isShape() {}

// OvalShape is the ellipse inscribed in its bounding rectangle.
type OvalShape struct {
	Rect Rect
}

// Bounds returns the inscribing rectangle.
func (s OvalShape) Bounds() Rect { return s.Rect }

func (OvalShape) isShape() {}

// PathShape is a polyline outline marker.
type PathShape struct {
	Path *Path
}

// Bounds returns the bounding rectangle of the outline vertices.
func (s PathShape) Bounds() Rect { return s.Path.Bounds() }

func (PathShape) isShape() {}

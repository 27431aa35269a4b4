package marker

import (
	"fmt"
	"strings"
)

// DefaultSize is the marker size used when no WithSize option is given.
const DefaultSize = 3.0

// Factory produces a renderable shape for a point geometry.
//
// CreatePoint is a pure function of the center and the configured size:
// it performs no I/O, cannot fail for any finite input, and returns a
// fresh descriptor on every call.
type Factory interface {
	// CreatePoint returns the marker shape centered on the given point.
	CreatePoint(center Point) Shape

	// Size returns the configured marker size.
	Size() float64
}

// Kind identifies one of the built-in marker factories.
type Kind int

const (
	KindSquare Kind = iota
	KindCircle
	KindTriangle
	KindStar
	KindCross
	KindX
)

var kindNames = [...]string{"square", "circle", "triangle", "star", "cross", "x"}

// String returns the lower-case marker name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(s)
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("marker: unknown kind %q", s)
}

// New creates the factory for the given kind. Use the typed
// constructors (NewSquare, NewStar, ...) when the kind is known at
// compile time; New serves callers that select markers by name, such as
// chart or map style configuration.
func New(kind Kind, opts ...Option) (Factory, error) {
	var f Factory
	switch kind {
	case KindSquare:
		f = NewSquare(opts...)
	case KindCircle:
		f = NewCircle(opts...)
	case KindTriangle:
		f = NewTriangle(opts...)
	case KindStar:
		f = NewStar(opts...)
	case KindCross:
		f = NewCross(opts...)
	case KindX:
		f = NewX(opts...)
	default:
		return nil, fmt.Errorf("marker: unknown kind %q", kind)
	}
	Logger().Debug("marker factory created", "kind", kind.String(), "size", f.Size())
	return f, nil
}

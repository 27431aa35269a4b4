// Package marker produces simple 2D shapes for rendering point
// geometries.
//
// Screen drawing APIs have no actual point primitive, so a point is
// rendered as a small marker shape instead: a square, a circle, a
// triangle, a star, a plus sign, or an X. Each marker factory computes
// a closed-form outline from a center coordinate and a configured size,
// and hands back a backend-independent shape descriptor for a renderer
// to draw.
//
// # Quick Start
//
//	f := marker.NewStar(marker.WithSize(8))
//	shape := f.CreatePoint(marker.Pt(120, 80))
//
//	switch s := shape.(type) {
//	case marker.RectShape:
//		// fill or stroke s.Rect
//	case marker.OvalShape:
//		// draw the ellipse inscribed in s.Rect
//	case marker.PathShape:
//		// trace s.Path.Vertices(), closing if s.Path.Closed()
//	}
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The upward-pointing Triangle marker therefore points toward
// negative Y.
//
// # Concurrency
//
// Factories are immutable after construction; CreatePoint allocates a
// fresh descriptor per call and touches no shared state, so a single
// factory may be shared across goroutines without synchronization.
package marker

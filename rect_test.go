package marker

import "testing"

func TestRectAround(t *testing.T) {
	r := RectAround(Pt(10, 10), 4, 4)
	want := Rect{X: 8, Y: 8, W: 4, H: 4}
	if r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
}

func TestRectCorners(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}

	if min := r.Min(); min != Pt(1, 2) {
		t.Errorf("Min = %+v, want (1, 2)", min)
	}
	if max := r.Max(); max != Pt(4, 6) {
		t.Errorf("Max = %+v, want (4, 6)", max)
	}
	if c := r.Center(); c != Pt(2.5, 4) {
		t.Errorf("Center = %+v, want (2.5, 4)", c)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	inside := []Point{Pt(5, 5), Pt(0, 0), Pt(10, 10), Pt(0, 10)}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Contains(%+v) = false, want true", p)
		}
	}

	outside := []Point{Pt(-0.1, 5), Pt(5, 10.1), Pt(11, 11)}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Contains(%+v) = true, want false", p)
		}
	}
}

func TestRectNegativeExtentPreserved(t *testing.T) {
	// Degenerate marker sizes flow through without normalization.
	r := RectAround(Pt(0, 0), -4, -4)
	want := Rect{X: 2, Y: 2, W: -4, H: -4}
	if r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
}

package marker

import (
	"math"
	"testing"
)

func TestPoint(t *testing.T) {
	p1 := Pt(3, 4)
	p2 := Pt(0, 0)

	// Distance
	dist := p1.Distance(p2)
	if math.Abs(dist-5) > 0.001 {
		t.Errorf("Distance = %f, want 5", dist)
	}

	// Add
	p3 := p1.Add(Pt(1, 1))
	if p3.X != 4 || p3.Y != 5 {
		t.Errorf("Add = %+v, want (4, 5)", p3)
	}

	// Sub
	p4 := p1.Sub(Pt(1, 1))
	if p4.X != 2 || p4.Y != 3 {
		t.Errorf("Sub = %+v, want (2, 3)", p4)
	}

	// Mul
	p5 := p1.Mul(2)
	if p5.X != 6 || p5.Y != 8 {
		t.Errorf("Mul = %+v, want (6, 8)", p5)
	}

	// Length
	length := p1.Length()
	if math.Abs(length-5) > 0.001 {
		t.Errorf("Length = %f, want 5", length)
	}
}

func TestPointApprox(t *testing.T) {
	p := Pt(1, 2)

	if !p.Approx(Pt(1.0000001, 2.0000001), 0.001) {
		t.Error("Approx should accept nearby point")
	}
	if p.Approx(Pt(1.1, 2), 0.001) {
		t.Error("Approx should reject distant point")
	}
}

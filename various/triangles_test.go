package various

import (
	"math"
	"testing"
)

func TestHeronsTriArea(t *testing.T) {
	if got := HeronsTriArea(3, 4, 5); math.Abs(got-6) > 1e-12 {
		t.Errorf("HeronsTriArea(3, 4, 5) = %f, want 6", got)
	}
	if got := HeronsTriArea(2, 2, 2); math.Abs(got-math.Sqrt(3)) > 1e-12 {
		t.Errorf("HeronsTriArea(2, 2, 2) = %f, want %f", got, math.Sqrt(3))
	}
}

func TestIsPointInTriangle(t *testing.T) {
	p1 := [2]float64{0, 0}
	p2 := [2]float64{4, 0}
	p3 := [2]float64{0, 4}
	if !IsPointInTriangle(p1, p2, p3, [2]float64{1, 1}) {
		t.Error("expected (1,1) inside")
	}
	if !IsPointInTriangle(p1, p2, p3, [2]float64{0, 0}) {
		t.Error("expected corner inside")
	}
	if !IsPointInTriangle(p1, p2, p3, [2]float64{2, 2}) {
		t.Error("expected edge point inside")
	}
	if IsPointInTriangle(p1, p2, p3, [2]float64{3, 3}) {
		t.Error("expected (3,3) outside")
	}
	if IsPointInTriangle(p1, p2, p3, [2]float64{-1, 0}) {
		t.Error("expected (-1,0) outside")
	}
}

func TestCalcHeightInTriangle(t *testing.T) {
	p1 := [2]float64{0, 0}
	p2 := [2]float64{6, 0}
	p3 := [2]float64{0, 6}

	// At a corner the height is the corner height.
	if got := CalcHeightInTriangle(p1, p2, p3, p1, 1, 2, 3); math.Abs(got-1) > 1e-12 {
		t.Errorf("height at corner = %f, want 1", got)
	}

	// At the centroid the height is the mean of the corners.
	centroid := [2]float64{2, 2}
	if got := CalcHeightInTriangle(p1, p2, p3, centroid, 1, 2, 3); math.Abs(got-2) > 1e-12 {
		t.Errorf("height at centroid = %f, want 2", got)
	}
}

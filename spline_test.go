package gioplot

import (
	"math"
	"testing"
)

func TestSplineControlPointExactness(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}
	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	ys := SplineVector(points, xs)
	if ys == nil {
		t.Fatal("expected spline, got nil")
	}
	for i, p := range points {
		if math.Abs(ys[i]-p.Y) > 1e-9 {
			t.Errorf("at x=%g: got %g, want %g", p.X, ys[i], p.Y)
		}
	}
}

func TestSplineSampleCount(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}
	samples := SplinePoints(points, 0, 3, 4)
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}
	for i, s := range samples {
		wantX := float64(i)
		if math.Abs(s.X-wantX) > 1e-9 {
			t.Errorf("sample %d: x=%g, want %g", i, s.X, wantX)
		}
		if math.Abs(s.Y-points[i].Y) > 1e-9 {
			t.Errorf("sample %d: y=%g, want %g", i, s.Y, points[i].Y)
		}
	}
}

func TestSplineLinearData(t *testing.T) {
	// A spline through collinear points is the line itself.
	points := []Point{{0, 1}, {2, 5}, {5, 11}, {10, 21}}
	for _, x := range []float64{0.5, 1, 3.3, 7, 9.9} {
		got := SplineVector(points, []float64{x})[0]
		want := 2*x + 1
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("at x=%g: got %g, want %g", x, got, want)
		}
	}
}

func TestSplineDegenerateInput(t *testing.T) {
	for _, tc := range []struct {
		name   string
		points []Point
	}{
		{"empty", nil},
		{"single point", []Point{{0, 0}}},
		{"duplicate x", []Point{{0, 0}, {0, 1}, {1, 2}}},
		{"decreasing x", []Point{{0, 0}, {2, 1}, {1, 2}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := SplineVector(tc.points, []float64{0}); got != nil {
				t.Errorf("expected nil, got %v", got)
			}
			if got := SplinePoints(tc.points, 0, 1, 4); got != nil {
				t.Errorf("expected nil points, got %v", got)
			}
		})
	}
}

func TestSplinePointsShortVector(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}}
	if got := SplinePoints(points, 0, 1, 1); got != nil {
		t.Errorf("expected nil for veclen 1, got %v", got)
	}
}

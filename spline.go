package gioplot

import "sort"

// Point is a single control point of a dataset.
type Point struct {
	X, Y float64
}

// splineSolve computes natural cubic spline second derivatives for the
// given control points. It requires at least two points with strictly
// increasing X values and returns nil otherwise.
func splineSolve(points []Point) []float64 {
	n := len(points)
	if n < 2 {
		return nil
	}
	for i := 1; i < n; i++ {
		if points[i].X <= points[i-1].X {
			return nil
		}
	}
	y2 := make([]float64, n)
	u := make([]float64, n-1)
	// Natural boundary: zero second derivative at both ends.
	y2[0] = 0
	u[0] = 0
	for i := 1; i < n-1; i++ {
		sig := (points[i].X - points[i-1].X) / (points[i+1].X - points[i-1].X)
		p := sig*y2[i-1] + 2
		y2[i] = (sig - 1) / p
		u[i] = (points[i+1].Y-points[i].Y)/(points[i+1].X-points[i].X) -
			(points[i].Y-points[i-1].Y)/(points[i].X-points[i-1].X)
		u[i] = (6*u[i]/(points[i+1].X-points[i-1].X) - sig*u[i-1]) / p
	}
	y2[n-1] = 0
	for i := n - 2; i >= 0; i-- {
		y2[i] = y2[i]*y2[i+1] + u[i]
	}
	return y2
}

// splineEval interpolates the spline at x using the second derivatives
// from splineSolve. Values outside the control range extrapolate from
// the end segments.
func splineEval(points []Point, y2 []float64, x float64) float64 {
	lo := sort.Search(len(points), func(i int) bool {
		return points[i].X > x
	})
	if lo > 0 {
		lo--
	}
	if lo >= len(points)-1 {
		lo = len(points) - 2
	}
	hi := lo + 1
	h := points[hi].X - points[lo].X
	a := (points[hi].X - x) / h
	b := (x - points[lo].X) / h
	return a*points[lo].Y + b*points[hi].Y +
		((a*a*a-a)*y2[lo]+(b*b*b-b)*y2[hi])*h*h/6
}

// SplineVector evaluates the natural cubic spline through points at each
// of the given x positions. It returns nil if points cannot form a
// spline.
func SplineVector(points []Point, xs []float64) []float64 {
	y2 := splineSolve(points)
	if y2 == nil {
		return nil
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = splineEval(points, y2, x)
	}
	return ys
}

// SplinePoints resamples the natural cubic spline through points as
// veclen evenly spaced samples spanning [min, max]. It returns nil if
// points cannot form a spline or veclen is less than two.
func SplinePoints(points []Point, min, max float64, veclen int) []Point {
	if veclen < 2 {
		return nil
	}
	y2 := splineSolve(points)
	if y2 == nil {
		return nil
	}
	dx := (max - min) / float64(veclen-1)
	out := make([]Point, veclen)
	for i := range out {
		x := min + dx*float64(i)
		out[i] = Point{X: x, Y: splineEval(points, y2, x)}
	}
	return out
}

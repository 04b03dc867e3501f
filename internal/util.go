package internal

import "math"

// The single tolerance used for every "is this effectively zero" decision.
// Orientation, ear reduction and the triangle predicate must agree on it, or
// boundary points could be classified differently by different steps.
const Epsilon = 1e-8

func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Copy the polygon so that a consuming operation can't touch the caller's
// vertices.
func (poly Polygon) Clone() Polygon {
	points := make([]Point, len(poly.Points))
	copy(points, poly.Points)
	return Polygon{Points: points}
}

// Delete the vertex at index i in place.
func (poly *Polygon) removeAt(i int) Point {
	removed := poly.Points[i]
	poly.Points = append(poly.Points[:i], poly.Points[i+1:]...)
	return removed
}

// Reverse the vertex order in place.
func (poly *Polygon) reverseInPlace() {
	points := poly.Points
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

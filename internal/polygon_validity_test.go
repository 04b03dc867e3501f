package internal

// This contains no actual tests. It is just a helper for checking containment
// against the even-odd reference.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sample a grid over the polygon's padded bounding box and check that
// ContainsPoint agrees with the even-odd rule everywhere except right on the
// boundary, where the even-odd rule is arbitrary.
func validateContainmentBySampling(t *testing.T, polygon *Polygon) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size
	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if polygon.BoundaryDistance(p) < 1e-6 {
				continue
			}

			actual := polygon.ContainsPoint(p)
			if polygon.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be in the polygon", p)
			} else {
				assert.False(t, actual, "point %v should not be in the polygon", p)
			}
		}
	}
}

// Points along every edge, including the vertices, all of which must be
// contained.
func boundarySamples(polygon *Polygon) []Point {
	var samples []Point
	n := len(polygon.Points)
	for i, a := range polygon.Points {
		b := polygon.Points[CircularIndex(i+1, n)]
		for _, t := range []float64{0, 0.25, 0.5, 0.75} {
			samples = append(samples, Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
	}
	return samples
}

// Run fn and return the ContainsError it panics with, if any. Other panics
// propagate.
func catchContainsError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		err = HandleContainsPanicRecover(recover())
	}()
	fn()
	return nil
}

package internal

import "math"

// Total signed turning angle of the closed path through points. This is the
// winding integral of the edge direction, so for a simple polygon it is 2π
// when the points are counterclockwise and -2π when they are clockwise.
//
// A path that doubles back on itself (a 180° turn) has no defined turning
// angle, and a path with coincident consecutive points has no edge direction
// at all. Both are fatal. Any edge shorter than Epsilon counts as coincident
// points, so simple polygons with edges that short are rejected too.
func WindingAngle(points []Point) float64 {
	n := len(points)
	if n < 3 {
		fatal(ErrTooFewVertices, "cannot compute winding of %d points", n)
	}

	// Unit direction of every edge, including the closing edge back to points[0]
	directions := make([]Vector, n)
	for i, p := range points {
		next := points[CircularIndex(i+1, n)]
		edge := Sub(next, p)
		if edge.Norm() < Epsilon {
			fatal(ErrDegenerateEdge, "edge %d from %v to %v", i, p, next)
		}
		directions[i] = edge.Normalized()
	}

	var angle float64
	for i, a := range directions {
		b := directions[CircularIndex(i+1, n)]
		cos := b.Dot(a)
		sin := b.Cross(a)
		if IsZero(sin) {
			if cos >= 0 {
				// Straight continuation
				continue
			}
			// Skipping this vertex would work for a genuinely simple curve, since
			// the turning angle is invariant under continuous deformation, but a
			// reversal almost always means the input is not simple.
			fatal(ErrReversal, "at vertex %d (%v)", CircularIndex(i+1, n), points[CircularIndex(i+1, n)])
		}
		// Clamp, since rounding can push a dot product of unit vectors past 1
		turn := math.Acos(math.Max(-1, math.Min(1, cos)))
		if sin > 0 {
			angle += turn
		} else {
			angle -= turn
		}
	}
	return angle
}

func IsCCW(polygon *Polygon) bool {
	return WindingAngle(polygon.Points) > 0
}

func IsCW(polygon *Polygon) bool {
	return !IsCCW(polygon)
}

// Shoelace area, positive for counterclockwise polygons. This is the usual
// alternative to the winding integral and is used to check it.
func SignedArea(polygon *Polygon) float64 {
	var area float64
	n := len(polygon.Points)
	for i, p := range polygon.Points {
		next := polygon.Points[CircularIndex(i+1, n)]
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}

func (t *Triangle) SignedArea() float64 {
	return SignedArea(&Polygon{Points: []Point{t.A, t.B, t.C}})
}

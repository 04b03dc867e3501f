package internal

// Even-odd rule point-in-polygon. This is provided primarily for testing the
// ear reduction, which is harder to get right. Points on the boundary may land
// on either side.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray from p toward +X. Edges are half open in Y,
// so a ray through a vertex is counted once.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Distance from p to the nearest point on the polygon's boundary.
func (poly Polygon) BoundaryDistance(p Point) float64 {
	best := -1.0
	n := len(poly.Points)
	for i, start := range poly.Points {
		end := poly.Points[CircularIndex(i+1, n)]
		edge := Sub(end, start)
		t := Sub(p, start).Dot(edge) / edge.Dot(edge)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		closest := Point{start.X + t*edge.X, start.Y + t*edge.Y}
		d := Sub(p, closest).Norm()
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

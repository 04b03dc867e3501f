package internal

// Point in counterclockwise triangle. Points on an edge, within Epsilon, count
// as inside.
func (t *Triangle) ContainsPoint(p Point) bool {
	return isLeftOrOn(t.A, t.B, p) &&
		isLeftOrOn(t.B, t.C, p) &&
		isLeftOrOn(t.C, t.A, p)
}

func isLeftOrOn(start, end, p Point) bool {
	d := leftDistance(start, end, p)
	if IsZero(d) {
		return true
	}
	return d > 0
}

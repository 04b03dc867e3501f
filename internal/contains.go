package internal

// Ear reduction for point-in-polygon. This is ear clipping specialized to a
// yes/no answer: it never records the triangles it clips, and it stops as soon
// as one of them claims the point. Boundary points are always inside, since
// the closed ears cover the closed polygon.

type EventKind int

const (
	// The input was clockwise and has been reversed.
	EventReversed EventKind = iota
	// A middle vertex was collinear with its neighbors and was dropped.
	EventCollinear
	// An ear was tested and did not contain the point, so it was clipped.
	EventClipped
	// An ear contained the point. This ends the query.
	EventHit
	// The last three vertices were tested.
	EventFinal
)

func (k EventKind) String() string {
	switch k {
	case EventReversed:
		return "reversed"
	case EventCollinear:
		return "collinear"
	case EventClipped:
		return "clipped"
	case EventHit:
		return "hit"
	case EventFinal:
		return "final"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	// Ear under test, or the collinear triple. Zero for EventReversed.
	Triangle Triangle
	// Vertex removed from the polygon, for EventCollinear and EventClipped.
	Removed Point
	// Result of the containment test, for EventHit, EventClipped and EventFinal.
	Contained bool
	// Vertices left after the event.
	Remaining int
}

// Receives every step of a reduction. May be nil.
type Tracer func(Event)

func (trace Tracer) emit(event Event) {
	if trace != nil {
		trace(event)
	}
}

// Boundary-inclusive containment. The polygon may wind either way, and is not
// modified.
func (poly Polygon) ContainsPoint(p Point) bool {
	owned := poly.Clone()
	return owned.ReduceContains(p, nil)
}

// Destructive version of ContainsPoint: the polygon's vertex buffer is
// reversed and shrunk in place, and is useless afterwards.
func (poly *Polygon) ReduceContains(p Point, trace Tracer) bool {
	if len(poly.Points) < 3 {
		fatal(ErrTooFewVertices, "cannot test containment with %d points", len(poly.Points))
	}

	if IsCW(poly) {
		poly.reverseInPlace()
		trace.emit(Event{Kind: EventReversed, Remaining: len(poly.Points)})
	}

	for len(poly.Points) > 3 {
		i, collinear := poly.findEar()
		ear := poly.triangleAt(i)
		middle := CircularIndex(i+1, len(poly.Points))

		if collinear {
			removed := poly.removeAt(middle)
			trace.emit(Event{Kind: EventCollinear, Triangle: ear, Removed: removed, Remaining: len(poly.Points)})
			continue
		}

		if ear.ContainsPoint(p) {
			trace.emit(Event{Kind: EventHit, Triangle: ear, Contained: true, Remaining: len(poly.Points)})
			return true
		}
		removed := poly.removeAt(middle)
		trace.emit(Event{Kind: EventClipped, Triangle: ear, Removed: removed, Remaining: len(poly.Points)})
	}

	final := poly.triangleAt(0)
	contained := final.ContainsPoint(p)
	trace.emit(Event{Kind: EventFinal, Triangle: final, Contained: contained, Remaining: len(poly.Points)})
	return contained
}

// The triangle made by vertex i and the two vertices after it.
func (poly *Polygon) triangleAt(i int) Triangle {
	n := len(poly.Points)
	return Triangle{
		poly.Points[CircularIndex(i, n)],
		poly.Points[CircularIndex(i+1, n)],
		poly.Points[CircularIndex(i+2, n)],
	}
}

// Scan vertex triples in order for the first one that can be removed. The
// polygon must be counterclockwise.
//
// A collinear triple is returned immediately, since removing its middle vertex
// doesn't change the shape. Otherwise, the first convex corner with no other
// vertex inside it is an ear. A simple polygon always has one, but malformed
// input may only have convex corners that other vertices poke into; in that
// case we fall back to the first convex corner so the reduction still
// terminates.
func (poly *Polygon) findEar() (index int, collinear bool) {
	n := len(poly.Points)
	firstConvex := -1
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		c := poly.Points[CircularIndex(i+2, n)]

		if Sub(c, a).Norm() < Epsilon {
			fatal(ErrDegenerateEdge, "vertices %d and %d coincide at %v", i, CircularIndex(i+2, n), a)
		}

		// Distance of the middle vertex from the chord a -> c. For a convex corner,
		// the middle vertex sticks out to the right of the chord.
		d := leftDistance(a, c, b)
		if IsZero(d) {
			return i, true
		}
		if d > 0 {
			// Reflex corner
			continue
		}

		if firstConvex < 0 {
			firstConvex = i
		}
		if !poly.earBlocked(i) {
			return i, false
		}
	}

	if firstConvex < 0 {
		fatal(ErrNoEar, "with %d vertices remaining", n)
	}
	return firstConvex, false
}

// Does any vertex other than the corner's own three lie inside the triangle at
// index i? Vertices on the chord count too, since clipping there would pinch
// the polygon into two loops.
func (poly *Polygon) earBlocked(i int) bool {
	n := len(poly.Points)
	ear := poly.triangleAt(i)
	for j := 3; j < n; j++ {
		p := poly.Points[CircularIndex(i+j, n)]
		if leftDistance(ear.A, ear.B, p) >= Epsilon &&
			leftDistance(ear.B, ear.C, p) >= Epsilon &&
			leftDistance(ear.C, ear.A, p) > -Epsilon {
			return true
		}
	}
	return false
}

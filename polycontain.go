// Boundary-inclusive point-in-polygon testing for simple polygons.
//
// Polygons may be given in either winding direction. A point on an edge or a
// vertex is inside. Self-intersecting polygons are not supported, and some
// malformed inputs (fewer than three vertices, coincident consecutive
// vertices, or a path that doubles back on itself) produce an error rather
// than a guess.
//
// Edges shorter than Epsilon are treated as coincident vertices and rejected
// with ErrDegenerateEdge, even when the polygon is otherwise simple. Scale such
// polygons up before querying them.
package polycontain

import "github.com/osuushi/polycontain/internal"

type Point = internal.Point
type Event = internal.Event
type Tracer = internal.Tracer

const (
	EventReversed  = internal.EventReversed
	EventCollinear = internal.EventCollinear
	EventClipped   = internal.EventClipped
	EventHit       = internal.EventHit
	EventFinal     = internal.EventFinal
)

// Errors reported for malformed polygons. Match them with errors.Is.
var (
	ErrTooFewVertices = internal.ErrTooFewVertices
	ErrReversal       = internal.ErrReversal
	ErrDegenerateEdge = internal.ErrDegenerateEdge
	ErrNoEar          = internal.ErrNoEar
)

// The tolerance used for all boundary decisions.
const Epsilon = internal.Epsilon

// Check whether point lies inside polygon or on its boundary.
//
// The polygon slice is not modified, so the same slice can be queried from
// several goroutines at once.
func Contains(polygon []Point, point Point) (bool, error) {
	return ContainsTraced(polygon, point, nil)
}

// Like Contains, but reports each step of the reduction to trace.
func ContainsTraced(polygon []Point, point Point, trace Tracer) (contained bool, err error) {
	defer func() {
		recoveredErr := internal.HandleContainsPanicRecover(recover())
		if recoveredErr != nil {
			contained = false
			err = recoveredErr
		}
	}()
	owned := internal.Polygon{Points: polygon}.Clone()
	return owned.ReduceContains(point, trace), nil
}

// Total turning angle of the polygon's boundary: 2π for counterclockwise
// polygons and -2π for clockwise ones.
func Orientation(polygon []Point) (angle float64, err error) {
	defer func() {
		recoveredErr := internal.HandleContainsPanicRecover(recover())
		if recoveredErr != nil {
			angle = 0
			err = recoveredErr
		}
	}()
	return internal.WindingAngle(polygon), nil
}

package internal

type Point struct {
	X float64
	Y float64
}

// A displacement between two points. Vectors are values and are never
// modified after they are built.
type Vector struct {
	X float64
	Y float64
}

// Polygon vertices are implicitly closed: the last point connects back to the
// first. Operations that reduce a polygon consume its Points slice, so a
// Polygon should be owned by exactly one query at a time.
type Polygon struct {
	Points []Point
}

// Triangles used for containment are expected to be counterclockwise.
type Triangle struct {
	A, B, C Point
}

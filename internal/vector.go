package internal

import "math"

// Vector from b to a.
func Sub(a, b Point) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y}
}

// Euclidean length. Zero vectors are not checked here, so callers that divide
// by the norm must rule them out first.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Normalized() Vector {
	norm := v.Norm()
	return Vector{X: v.X / norm, Y: v.Y / norm}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Scalar 2D cross product with the operands swapped relative to the usual
// convention: v.Cross(w) is w × v. For unit vectors, b.Cross(a) is the sine of
// the counterclockwise angle turning from a to b.
func (v Vector) Cross(w Vector) float64 {
	return v.Y*w.X - v.X*w.Y
}

// Unit vector rotated 90° counterclockwise. For an edge p0 -> p1, this points
// to the left of the edge when traveling from p0 to p1.
func (v Vector) NormalUnitLeft() Vector {
	// Multiply by the rotation matrix
	//
	//   [[cos 90, -sin 90]
	//    [sin 90,  cos 90]]
	norm := v.Norm()
	return Vector{X: -v.Y / norm, Y: v.X / norm}
}

// Signed distance of point from the line through start and end. Positive
// values are to the left of start -> end.
func leftDistance(start, end, point Point) float64 {
	return Sub(end, start).NormalUnitLeft().Dot(Sub(point, start))
}

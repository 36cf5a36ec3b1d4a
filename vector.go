package rattrig

import "github.com/hupe1980/rattrig/numeric"

// Vector2 is a point or displacement in the plane. It is a small value type
// and is passed by value.
type Vector2[T numeric.Scalar[T]] [2]T

// Vec returns the vector (x, y).
func Vec[T numeric.Scalar[T]](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// X returns the first component.
func (v Vector2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vector2[T]) Y() T { return v[1] }

// Sub returns the displacement v1 - v2.
func Sub[T numeric.Scalar[T]](v1, v2 Vector2[T]) Vector2[T] {
	return Vector2[T]{v1[0].Sub(v2[0]), v1[1].Sub(v2[1])}
}

// Quad returns the quadrance (squared length) of v: x*x + y*y.
func Quad[T numeric.Scalar[T]](v Vector2[T]) T {
	return v[0].Mul(v[0]).Add(v[1].Mul(v[1]))
}

// Quadrance returns the quadrance between the points p1 and p2.
func Quadrance[T numeric.Scalar[T]](p1, p2 Vector2[T]) T {
	return Quad(Sub(p2, p1))
}

// Dot returns the dot product v1.x*v2.x + v1.y*v2.y.
func Dot[T numeric.Scalar[T]](v1, v2 Vector2[T]) T {
	return v1[0].Mul(v2[0]).Add(v1[1].Mul(v2[1]))
}

// Cross returns the 2D cross product v1.x*v2.y - v1.y*v2.x.
//
// The sign is positive when v2 lies counter-clockwise from v1. The magnitude
// is twice the area of the triangle spanned by v1, v2 and the origin.
func Cross[T numeric.Scalar[T]](v1, v2 Vector2[T]) T {
	return v1[0].Mul(v2[1]).Sub(v1[1].Mul(v2[0]))
}

// Spread returns the spread (squared sine of the angle) between v1 and v2:
//
//	Cross(v1, v2)² / (Quad(v1) * Quad(v2))
//
// If either vector is the zero vector the denominator is zero and the result
// is whatever T.Quo does: exact types return an error wrapping
// ErrDivisionByZero, Float returns NaN with a nil error.
func Spread[T numeric.Scalar[T]](v1, v2 Vector2[T]) (T, error) {
	return numeric.Square(Cross(v1, v2)).Quo(Quad(v1).Mul(Quad(v2)))
}

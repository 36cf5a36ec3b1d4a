package numeric

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Quo on exact types when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Scalar is the capability contract a number type must satisfy.
//
// FromInt is called on the zero value and must represent at least 0, 1 and 4
// exactly. Quo reports errors instead of panicking; whether a zero divisor is
// an error depends on the type.
type Scalar[T any] interface {
	fmt.Stringer

	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Cmp(T) int
	IsZero() bool
	FromInt(int64) T
}

// Zero returns the additive identity of T.
func Zero[T Scalar[T]]() T {
	var zero T
	return zero.FromInt(0)
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	var zero T
	return zero.FromInt(1)
}

// FromInt converts a small integer literal to T.
func FromInt[T Scalar[T]](n int64) T {
	var zero T
	return zero.FromInt(n)
}

// Equal reports whether a and b compare equal.
func Equal[T Scalar[T]](a, b T) bool {
	return a.Cmp(b) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of v.
func Sign[T Scalar[T]](v T) int {
	return v.Cmp(Zero[T]())
}

// Square returns v*v.
func Square[T Scalar[T]](v T) T {
	return v.Mul(v)
}

package numeric

import (
	"cmp"
	"fmt"
	"strconv"
)

// Float is an IEEE-754 double precision scalar.
type Float float64

// Add returns f+o.
func (f Float) Add(o Float) Float { return f + o }

// Sub returns f-o.
func (f Float) Sub(o Float) Float { return f - o }

// Mul returns f*o.
func (f Float) Mul(o Float) Float { return f * o }

// Quo returns f/o. The error is always nil: a zero divisor produces
// +Inf, -Inf or NaN.
func (f Float) Quo(o Float) (Float, error) { return f / o, nil }

// Cmp compares f and o. NaN is less than any other value.
func (f Float) Cmp(o Float) int { return cmp.Compare(f, o) }

// IsZero reports whether f == 0 (including -0).
func (f Float) IsZero() bool { return f == 0 }

// FromInt returns n as a Float.
func (Float) FromInt(n int64) Float { return Float(n) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// ParseFloat parses a decimal or scientific float literal.
func ParseFloat(s string) (Float, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q: %w", s, err)
	}
	return Float(v), nil
}

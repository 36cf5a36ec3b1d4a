package numeric

import (
	"fmt"
	"strconv"
)

// Int is a 64-bit signed integer scalar.
//
// Arithmetic wraps on overflow like Go integers. Division truncates toward zero.
type Int int64

// Add returns i+o.
func (i Int) Add(o Int) Int { return i + o }

// Sub returns i-o.
func (i Int) Sub(o Int) Int { return i - o }

// Mul returns i*o.
func (i Int) Mul(o Int) Int { return i * o }

// Quo returns i/o truncated toward zero, or ErrDivisionByZero if o is zero.
func (i Int) Quo(o Int) (Int, error) {
	if o == 0 {
		return 0, fmt.Errorf("int %d/0: %w", int64(i), ErrDivisionByZero)
	}
	return i / o, nil
}

// Cmp compares i and o and returns -1, 0 or +1.
func (i Int) Cmp(o Int) int {
	switch {
	case i < o:
		return -1
	case i > o:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether i == 0.
func (i Int) IsZero() bool { return i == 0 }

// FromInt returns n as an Int.
func (Int) FromInt(n int64) Int { return Int(n) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// ParseInt parses a base-10 integer.
func ParseInt(s string) (Int, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse int %q: %w", s, err)
	}
	return Int(v), nil
}

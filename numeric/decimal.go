package numeric

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Decimal is a 19-digit decimal scalar backed by github.com/govalues/decimal.
//
// The underlying library reports overflow as an error on every operation.
// Decimal keeps the first such error and carries it through later arithmetic;
// Err exposes it and Quo returns it. The zero value is 0.
type Decimal struct {
	d   decimal.Decimal
	err error
}

// NewDecimal returns value * 10^-scale.
func NewDecimal(value int64, scale int) (Decimal, error) {
	d, err := decimal.New(value, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("new decimal: %w", err)
	}
	return Decimal{d: d}, nil
}

type decimalOp func(decimal.Decimal) (decimal.Decimal, error)

func (x Decimal) apply(y Decimal, sym string, op decimalOp) Decimal {
	if x.err != nil {
		return x
	}
	if y.err != nil {
		return y
	}
	d, err := op(y.d)
	if err != nil {
		return Decimal{err: fmt.Errorf("decimal %s %s %s: %w", x.d, sym, y.d, err)}
	}
	return Decimal{d: d}
}

// Add returns x+y.
func (x Decimal) Add(y Decimal) Decimal { return x.apply(y, "+", x.d.Add) }

// Sub returns x-y.
func (x Decimal) Sub(y Decimal) Decimal { return x.apply(y, "-", x.d.Sub) }

// Mul returns x*y.
func (x Decimal) Mul(y Decimal) Decimal { return x.apply(y, "*", x.d.Mul) }

// Quo returns x/y rounded to 19 digits. A carried overflow error is returned
// first; a zero divisor yields an error wrapping ErrDivisionByZero.
func (x Decimal) Quo(y Decimal) (Decimal, error) {
	if err := x.Err(); err != nil {
		return x, err
	}
	if err := y.Err(); err != nil {
		return y, err
	}
	if y.d.IsZero() {
		return Decimal{}, fmt.Errorf("decimal %s/0: %w", x.d, ErrDivisionByZero)
	}
	r := x.apply(y, "/", x.d.Quo)
	return r, r.err
}

// Cmp compares the numeric values of x and y. A value carrying an error
// orders before every valid value and equal to another errored value.
func (x Decimal) Cmp(y Decimal) int {
	switch {
	case x.err != nil && y.err != nil:
		return 0
	case x.err != nil:
		return -1
	case y.err != nil:
		return 1
	}
	return x.d.Cmp(y.d)
}

// IsZero reports whether x == 0. It is false for a value carrying an error.
func (x Decimal) IsZero() bool { return x.err == nil && x.d.IsZero() }

// FromInt returns n with scale 0.
func (Decimal) FromInt(n int64) Decimal { return Decimal{d: decimal.MustNew(n, 0)} }

// Err returns the first arithmetic error carried by x, if any.
func (x Decimal) Err() error { return x.err }

// Float64 returns the nearest float64 to x.
func (x Decimal) Float64() float64 {
	f, _ := x.d.Float64()
	return f
}

// String formats x, or "NaN(<error>)" when x carries an error.
func (x Decimal) String() string {
	if x.err != nil {
		return "NaN(" + x.err.Error() + ")"
	}
	return x.d.String()
}

// ParseDecimal parses a decimal literal such as "-12.5".
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return Decimal{d: d}, nil
}

package numeric

import (
	"fmt"
	"math/big"
)

// Rat is an immutable exact rational number.
//
// Values are always kept in lowest terms with a positive denominator. The zero
// value is 0 and is ready to use. Every operation allocates a new result, so a
// Rat can be shared between goroutines.
type Rat struct {
	r *big.Rat
}

// NewRat returns num/den reduced to lowest terms. It panics if den is zero,
// like big.NewRat.
func NewRat(num, den int64) Rat {
	return Rat{r: big.NewRat(num, den)}
}

// RatFromBig returns a Rat holding a copy of x.
func RatFromBig(x *big.Rat) Rat {
	return Rat{r: new(big.Rat).Set(x)}
}

func (q Rat) val() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}
	return q.r
}

// Add returns q+o.
func (q Rat) Add(o Rat) Rat { return Rat{r: new(big.Rat).Add(q.val(), o.val())} }

// Sub returns q-o.
func (q Rat) Sub(o Rat) Rat { return Rat{r: new(big.Rat).Sub(q.val(), o.val())} }

// Mul returns q*o.
func (q Rat) Mul(o Rat) Rat { return Rat{r: new(big.Rat).Mul(q.val(), o.val())} }

// Quo returns q/o exactly, or ErrDivisionByZero if o is zero.
func (q Rat) Quo(o Rat) (Rat, error) {
	if o.IsZero() {
		return Rat{}, fmt.Errorf("rat %s/0: %w", q, ErrDivisionByZero)
	}
	return Rat{r: new(big.Rat).Quo(q.val(), o.val())}, nil
}

// Cmp compares q and o and returns -1, 0 or +1.
func (q Rat) Cmp(o Rat) int { return q.val().Cmp(o.val()) }

// IsZero reports whether q == 0.
func (q Rat) IsZero() bool { return q.r == nil || q.r.Sign() == 0 }

// FromInt returns n/1.
func (Rat) FromInt(n int64) Rat { return Rat{r: new(big.Rat).SetInt64(n)} }

// Num returns the numerator of q. The result may be modified freely.
func (q Rat) Num() *big.Int { return new(big.Int).Set(q.val().Num()) }

// Denom returns the positive denominator of q. The result may be modified freely.
func (q Rat) Denom() *big.Int { return new(big.Int).Set(q.val().Denom()) }

// Big returns a copy of q as a *big.Rat.
func (q Rat) Big() *big.Rat { return new(big.Rat).Set(q.val()) }

// Float64 returns the nearest float64 to q.
func (q Rat) Float64() float64 {
	f, _ := q.val().Float64()
	return f
}

// String formats q as "a/b", or "a" when the denominator is 1.
func (q Rat) String() string { return q.val().RatString() }

// MarshalText implements encoding.TextMarshaler.
func (q Rat) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Rat) UnmarshalText(text []byte) error {
	v, err := ParseRat(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// ParseRat parses "a/b", an integer or a finite decimal such as "0.8".
func ParseRat(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, fmt.Errorf("parse rat %q: invalid syntax", s)
	}
	return Rat{r: r}, nil
}

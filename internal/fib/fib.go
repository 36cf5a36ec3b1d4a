// Package fib computes Fibonacci numbers for the fibonacci demo command.
package fib

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidN is returned when n is zero.
	ErrInvalidN = errors.New("n must be positive")

	// ErrOverflow is returned when F(n) does not fit in a uint64.
	ErrOverflow = errors.New("fibonacci number overflows uint64")
)

// MaxN is the largest n for which F(n) fits in a uint64.
const MaxN = 93

// Fib returns the n-th Fibonacci number with F(1) = F(2) = 1.
func Fib(n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrInvalidN
	}
	a, b := uint64(1), uint64(1)
	for i := uint64(1); i < n; i++ {
		next, carry := bits.Add64(a, b, 0)
		if carry != 0 && i < n-1 {
			return 0, fmt.Errorf("F(%d): %w", n, ErrOverflow)
		}
		a, b = b, next
	}
	return a, nil
}

// Package numeric defines the arithmetic contract shared by every rational
// trigonometry formula and ships the concrete number types that satisfy it.
//
// # Contract
//
// A type T participates in the formulas when it implements [Scalar][T]:
// addition, subtraction, multiplication, division, ordering, a zero test and
// conversion from small integers. The zero value of T must be the additive
// identity, so generic code can obtain constants with [Zero], [One] and
// [FromInt] without a registry.
//
// # Types
//
//   - Int: 64-bit integers, truncating division
//   - Float: IEEE-754 float64, division by zero yields Inf or NaN
//   - Rat: exact rationals backed by math/big
//   - Decimal: 19-digit decimals backed by github.com/govalues/decimal
//
// Exact types report division by zero as [ErrDivisionByZero]; Float never
// returns a division error.
package numeric

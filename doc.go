// Package rattrig implements rational trigonometry over generic number types.
//
// Rational trigonometry replaces distance with quadrance (squared distance)
// and angle with spread (squared sine). Every quantity is then reachable with
// field arithmetic alone: no square roots and no transcendental functions. Over
// exact types such as [numeric.Rat] every result is exact.
//
// # Quick Start
//
//	v1 := rattrig.Vec(numeric.NewRat(1, 1), numeric.NewRat(2, 1))
//	v2 := rattrig.Vec(numeric.NewRat(3, 1), numeric.NewRat(4, 1))
//
//	s, err := rattrig.Spread(v1, v2) // 4/125
//	q := rattrig.Quad(v2)           // 25
//
// # Formulas
//
//   - Quad, Dot, Cross: vector primitives on [Vector2]
//   - Spread: squared sine between two vectors
//   - Archimedes: quadrea of a triangle from its three quadrances
//   - SpreadLaw: spread opposite a side from three quadrances
//   - TripleQuadFormula: third quadrance from two quadrances and a spread
//
// All functions are pure and safe for concurrent use.
//
// # Errors
//
// Only Spread and SpreadLaw divide. They do not check their inputs; the
// division is delegated to the number type, so exact types return an error
// wrapping [ErrDivisionByZero] while [numeric.Float] yields Inf or NaN.
//
// # Batch Evaluation
//
// Package batch evaluates the formulas over streams of triangles read from
// JSON Lines files, optionally zstd or lz4 compressed.
package rattrig

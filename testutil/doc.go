// Package testutil provides testing utilities for rattrig.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG that generates scalars and 2D vectors for every
// numeric type, and an assertion helper that compares scalars by value.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	a := rng.Rat(100, 12)                 // exact rational in [-100, 100]
//	vs := testutil.Vectors(rng, 64, rng.RatGen(100, 12))
//
// # Assertions
//
//	testutil.Equal(t, numeric.NewRat(4, 125), got)
package testutil

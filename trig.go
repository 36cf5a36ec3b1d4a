package rattrig

import "github.com/hupe1980/rattrig/numeric"

// Archimedes returns 4*q1*q2 - (q1+q2-q3)², the quadrea of a triangle with
// side quadrances q1, q2 and q3.
//
// The quadrea is 16 times the squared area. It is zero exactly when the three
// points are collinear, which also makes it a concyclicity test for four
// quadrances. Inputs are not validated.
//
//	   A
//	   |\
//	q1 | \ q3
//	   |  \
//	   B---C
//	    q2
func Archimedes[T numeric.Scalar[T]](q1, q2, q3 T) T {
	return numeric.FromInt[T](4).Mul(q1).Mul(q2).Sub(numeric.Square(q1.Add(q2).Sub(q3)))
}

// Collinear reports whether quadrances q1, q2, q3 belong to three collinear
// points, i.e. whether their quadrea is zero. A quadrea carrying an
// arithmetic error, such as an overflowed numeric.Decimal, is never zero.
func Collinear[T numeric.Scalar[T]](q1, q2, q3 T) bool {
	return Archimedes(q1, q2, q3).IsZero()
}

// SpreadLaw returns the spread of the angle opposite q3 in a triangle with
// side quadrances q1, q2, q3:
//
//	Archimedes(q1, q2, q3) / (4*q1*q2)
//
// A zero q1 or q2 makes the denominator zero; the outcome is decided by T.Quo.
func SpreadLaw[T numeric.Scalar[T]](q1, q2, q3 T) (T, error) {
	return Archimedes(q1, q2, q3).Quo(numeric.FromInt[T](4).Mul(q1).Mul(q2))
}

// TripleQuadFormula returns the quadrance of the third side of a triangle
// from two side quadrances q1, q2 and the spread s3 between them:
//
//	(q1+q2)² - 4*q1*q2*(1-s3)
func TripleQuadFormula[T numeric.Scalar[T]](q1, q2, s3 T) T {
	return numeric.Square(q1.Add(q2)).Sub(numeric.FromInt[T](4).Mul(q1).Mul(q2).Mul(numeric.One[T]().Sub(s3)))
}

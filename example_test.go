package rattrig_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/rattrig"
	"github.com/hupe1980/rattrig/numeric"
)

// ExampleArchimedes computes the quadrea of a triangle with rational quadrances.
func ExampleArchimedes() {
	q := rattrig.Archimedes(numeric.NewRat(1, 2), numeric.NewRat(1, 4), numeric.NewRat(1, 6))
	fmt.Println(q)

	// Three collinear points have zero quadrea.
	fmt.Println(rattrig.Archimedes[numeric.Int](1, 4, 9))
	// Output:
	// 23/144
	// 0
}

// ExampleSpread computes an exact spread between two vectors.
func ExampleSpread() {
	v1 := rattrig.Vec(numeric.NewRat(1, 1), numeric.NewRat(2, 1))
	v2 := rattrig.Vec(numeric.NewRat(3, 1), numeric.NewRat(4, 1))

	s, err := rattrig.Spread(v1, v2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
	// Output: 4/125
}

// ExampleSpread_zeroVector shows that exact types report division by zero.
func ExampleSpread_zeroVector() {
	_, err := rattrig.Spread(rattrig.Vec[numeric.Int](0, 0), rattrig.Vec[numeric.Int](1, 1))
	fmt.Println(errors.Is(err, rattrig.ErrDivisionByZero))
	// Output: true
}

// ExampleSpreadLaw applies the law of spreads with floating point quadrances.
func ExampleSpreadLaw() {
	s, err := rattrig.SpreadLaw[numeric.Float](5, 25, 20)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
	// Output: 0.8
}

// ExampleTripleQuadFormula evaluates the triple quad formula exactly.
func ExampleTripleQuadFormula() {
	q := rattrig.TripleQuadFormula(numeric.NewRat(5, 1), numeric.NewRat(25, 1), numeric.NewRat(4, 125))
	fmt.Println(q)
	// Output: 416
}

// Example_vectors shows the vector primitives.
func Example_vectors() {
	v1 := rattrig.Vec[numeric.Int](1, 2)
	v2 := rattrig.Vec[numeric.Int](3, 4)

	fmt.Println(rattrig.Cross(v1, v2), rattrig.Dot(v1, v2), rattrig.Quad(v2))
	// Output: -2 11 25
}

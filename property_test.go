package rattrig

import (
	"testing"

	"github.com/hupe1980/rattrig/numeric"
	"github.com/hupe1980/rattrig/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertySamples = 200

func TestVectorProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("Int", func(t *testing.T) {
		checkVectorProperties(t, testutil.Vectors(rng, propertySamples, rng.IntGen(100)))
	})
	t.Run("Float", func(t *testing.T) {
		checkVectorProperties(t, testutil.Vectors(rng, propertySamples, rng.FloatGen(100)))
	})
	t.Run("Rat", func(t *testing.T) {
		checkVectorProperties(t, testutil.Vectors(rng, propertySamples, rng.RatGen(100, 12)))
	})
	t.Run("Decimal", func(t *testing.T) {
		checkVectorProperties(t, testutil.Vectors(rng, propertySamples, rng.DecimalGen(100, 2)))
	})
}

func checkVectorProperties[T numeric.Scalar[T]](t *testing.T, vs [][2]T) {
	t.Helper()
	zero := numeric.Zero[T]()

	for i := 1; i < len(vs); i++ {
		v1, v2 := Vector2[T](vs[i-1]), Vector2[T](vs[i])

		// Antisymmetry of the cross product.
		testutil.Equal(t, zero, Cross(v1, v2).Add(Cross(v2, v1)))

		testutil.Equal(t, Dot(v1, v2), Dot(v2, v1))

		s12, err := Spread(v1, v2)
		require.NoError(t, err)
		s21, err := Spread(v2, v1)
		require.NoError(t, err)

		testutil.Equal(t, s12, s21)
		assert.GreaterOrEqual(t, numeric.Sign(s12), 0, "spread %s must be non-negative", s12)

		// A vector has spread 0 with itself.
		self, err := Spread(v1, v1)
		require.NoError(t, err)
		testutil.Equal(t, zero, self)
	}
}

func TestSpreadBounds(t *testing.T) {
	rng := testutil.NewRNG(7)
	vs := testutil.Vectors(rng, propertySamples, rng.RatGen(50, 9))
	one := numeric.One[numeric.Rat]()

	for i := 1; i < len(vs); i++ {
		v1, v2 := Vector2[numeric.Rat](vs[i-1]), Vector2[numeric.Rat](vs[i])

		s, err := Spread(v1, v2)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Cmp(one), 0, "spread %s must not exceed 1", s)

		perp := Vec(numeric.Zero[numeric.Rat]().Sub(v1.Y()), v1.X())
		sp, err := Spread(v1, perp)
		require.NoError(t, err)
		testutil.Equal(t, one, sp)
	}
}

// Spread between two vectors equals the law of spreads applied to the
// triangle O, v1, v2.
func TestSpreadAgreesWithSpreadLaw(t *testing.T) {
	rng := testutil.NewRNG(99)

	t.Run("Rat", func(t *testing.T) {
		vs := testutil.Vectors(rng, propertySamples, rng.RatGen(100, 12))
		for i := 1; i < len(vs); i++ {
			v1, v2 := Vector2[numeric.Rat](vs[i-1]), Vector2[numeric.Rat](vs[i])

			direct, err := Spread(v1, v2)
			require.NoError(t, err)
			law, err := SpreadLaw(Quad(v1), Quad(v2), Quad(Sub(v1, v2)))
			require.NoError(t, err)

			testutil.Equal(t, direct, law)
		}
	})

	t.Run("Float", func(t *testing.T) {
		vs := testutil.Vectors(rng, propertySamples, rng.FloatGen(10))
		for i := 1; i < len(vs); i++ {
			v1, v2 := Vector2[numeric.Float](vs[i-1]), Vector2[numeric.Float](vs[i])

			direct, err := Spread(v1, v2)
			require.NoError(t, err)
			law, err := SpreadLaw(Quad(v1), Quad(v2), Quad(Sub(v1, v2)))
			require.NoError(t, err)

			assert.InDelta(t, float64(direct), float64(law), 1e-6)
		}
	})
}

func TestArchimedesProperties(t *testing.T) {
	rng := testutil.NewRNG(2024)

	t.Run("Int", func(t *testing.T) {
		checkArchimedesProperties(t, testutil.Vectors(rng, propertySamples, rng.IntGen(100)))
	})
	t.Run("Rat", func(t *testing.T) {
		checkArchimedesProperties(t, testutil.Vectors(rng, propertySamples, rng.RatGen(100, 12)))
	})
}

func checkArchimedesProperties[T numeric.Scalar[T]](t *testing.T, ps [][2]T) {
	t.Helper()
	four := numeric.FromInt[T](4)

	for i := 2; i < len(ps); i++ {
		a, b, c := Vector2[T](ps[i-2]), Vector2[T](ps[i-1]), Vector2[T](ps[i])
		q1, q2, q3 := Quadrance(a, b), Quadrance(b, c), Quadrance(c, a)

		// Quadrea is 4 * (twice the signed area)².
		area2 := Cross(Sub(b, a), Sub(c, a))
		testutil.Equal(t, four.Mul(area2).Mul(area2), Archimedes(q1, q2, q3))
		testutil.Equal(t, Archimedes(q1, q2, q3), Archimedes(q2, q1, q3))
		assert.Equal(t, area2.IsZero(), Collinear(q1, q2, q3))

		// Move c onto the line through a and b.
		k := numeric.FromInt[T](int64(i%5 - 2))
		d := Vec(a.X().Add(k.Mul(b.X().Sub(a.X()))), a.Y().Add(k.Mul(b.Y().Sub(a.Y()))))
		assert.True(t, Collinear(Quadrance(a, b), Quadrance(b, d), Quadrance(d, a)))
	}
}

func TestTripleQuadFormulaProperties(t *testing.T) {
	rng := testutil.NewRNG(31337)
	two := numeric.FromInt[numeric.Rat](2)

	for range propertySamples {
		q1, q2, q3 := rng.Rat(50, 7), rng.Rat(50, 7), rng.Rat(50, 7)
		if q1.IsZero() || q2.IsZero() {
			continue
		}

		testutil.Equal(t, TripleQuadFormula(q1, q2, q3), TripleQuadFormula(q2, q1, q3))

		s3, err := SpreadLaw(q1, q2, q3)
		require.NoError(t, err)
		got := TripleQuadFormula(q1, q2, s3)
		testutil.Equal(t, q3.Mul(two.Mul(q1.Add(q2)).Sub(q3)), got)
	}
}

func TestTypeGenericity(t *testing.T) {
	assert.Equal(t, "32", Archimedes[numeric.Int](2, 4, 6).String())
	assert.Equal(t, "32", Archimedes[numeric.Float](2, 4, 6).String())
	assert.Equal(t, "32", Archimedes(rat(2, 1), rat(4, 1), rat(6, 1)).String())
	assert.Equal(t, "32", archimedesDecimal(t, "2", "4", "6").String())

	assert.Equal(t, "25", Quad(Vec[numeric.Int](3, 4)).String())
	assert.Equal(t, "25", Quad(Vec[numeric.Float](3, 4)).String())
	assert.Equal(t, "25", Quad(Vec(rat(3, 1), rat(4, 1))).String())

	d, err := SpreadLaw(decimal(t, "5"), decimal(t, "25"), decimal(t, "20"))
	require.NoError(t, err)
	assert.InDelta(t, 0.8, d.Float64(), 1e-18)
}

func archimedesDecimal(t *testing.T, a, b, c string) numeric.Decimal {
	t.Helper()
	return Archimedes(decimal(t, a), decimal(t, b), decimal(t, c))
}

func decimal(t *testing.T, s string) numeric.Decimal {
	t.Helper()
	d, err := numeric.ParseDecimal(s)
	require.NoError(t, err)
	return d
}

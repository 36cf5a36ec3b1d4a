package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/rattrig/numeric"
	"github.com/stretchr/testify/assert"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int returns a random integer in [-maxAbs, maxAbs].
func (r *RNG) Int(maxAbs int64) numeric.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return numeric.Int(r.rand.Int63n(2*maxAbs+1) - maxAbs)
}

// Float returns a random float in [-maxAbs, maxAbs).
func (r *RNG) Float(maxAbs float64) numeric.Float {
	r.mu.Lock()
	defer r.mu.Unlock()
	return numeric.Float((r.rand.Float64()*2 - 1) * maxAbs)
}

// Rat returns a random rational with numerator in [-maxAbs*den, maxAbs*den]
// and denominator in [1, maxDen].
func (r *RNG) Rat(maxAbs, maxDen int64) numeric.Rat {
	r.mu.Lock()
	defer r.mu.Unlock()
	den := r.rand.Int63n(maxDen) + 1
	span := maxAbs * den
	return numeric.NewRat(r.rand.Int63n(2*span+1)-span, den)
}

// Decimal returns a random decimal in [-maxAbs, maxAbs] with the given scale.
func (r *RNG) Decimal(maxAbs int64, scale int) numeric.Decimal {
	r.mu.Lock()
	unit := int64(1)
	for range scale {
		unit *= 10
	}
	span := maxAbs * unit
	v := r.rand.Int63n(2*span+1) - span
	r.mu.Unlock()

	d, err := numeric.NewDecimal(v, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// IntGen returns a generator bound to Int(maxAbs).
func (r *RNG) IntGen(maxAbs int64) func() numeric.Int {
	return func() numeric.Int { return r.Int(maxAbs) }
}

// FloatGen returns a generator bound to Float(maxAbs).
func (r *RNG) FloatGen(maxAbs float64) func() numeric.Float {
	return func() numeric.Float { return r.Float(maxAbs) }
}

// RatGen returns a generator bound to Rat(maxAbs, maxDen).
func (r *RNG) RatGen(maxAbs, maxDen int64) func() numeric.Rat {
	return func() numeric.Rat { return r.Rat(maxAbs, maxDen) }
}

// DecimalGen returns a generator bound to Decimal(maxAbs, scale).
func (r *RNG) DecimalGen(maxAbs int64, scale int) func() numeric.Decimal {
	return func() numeric.Decimal { return r.Decimal(maxAbs, scale) }
}

// Vectors generates num random 2D vectors from gen. Zero vectors are
// replaced so every returned vector has non-zero quadrance.
func Vectors[T numeric.Scalar[T]](r *RNG, num int, gen func() T) [][2]T {
	vectors := make([][2]T, num)
	for i := range vectors {
		v := [2]T{gen(), gen()}
		for v[0].IsZero() && v[1].IsZero() {
			v = [2]T{gen(), gen()}
		}
		vectors[i] = v
	}
	return vectors
}

// Equal asserts that want and got compare equal as numbers. Unlike
// assert.Equal it does not depend on the internal representation, which
// matters for Rat and Decimal.
func Equal[T numeric.Scalar[T]](t assert.TestingT, want, got T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if numeric.Equal(want, got) {
		return true
	}
	return assert.Fail(t, "Not equal: \n"+
		"expected: "+want.String()+"\n"+
		"actual  : "+got.String(), msgAndArgs...)
}

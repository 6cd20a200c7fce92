package sampling

import "math/rand"

// Source is the random-number dependency every sampler in this package
// relies on: a uniform real in [0,1) and a uniform integer in [0,n) for
// a positive n. *rand.Rand satisfies this interface directly.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource wraps a seeded math/rand generator. Callers that need
// reproducible samples across runs should hold on to the seed; callers
// that don't care about determinism can pass any int64, such as
// time.Now().UnixNano().
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// ExclusiveFloat64 returns a uniform value in (0,1) exclusive by
// redrawing while the source returns exactly zero. Several algorithms
// compute log(U) or U^x for non-integer x and cannot tolerate U=0;
// drawing a 0.0 in practice is exceedingly rare; the loop exists only
// to guard that edge case, not because it will typically spin.
func ExclusiveFloat64(src Source) float64 {
	u := 0.0
	for u == 0.0 {
		u = src.Float64()
	}
	return u
}

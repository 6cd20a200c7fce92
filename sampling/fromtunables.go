package sampling

import (
	"time"

	"github.com/streamsample/reservoir/internal/config"
)

// NewFromTunables constructs a Li L reservoir sampler — the simplest
// constant-amortized-time unweighted variant — sized and seeded from t. A zero t.Seed falls
// back to a time-derived seed, matching config.Tunables' "unseeded"
// convention.
func NewFromTunables[T any](t config.Tunables) (*ReservoirSampler[T], error) {
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewLiLSampler[T](t.SampleSize, NewSource(seed))
}

// NewChaoFromTunables constructs a ChaoSampler sized from t, ignoring
// t.DefaultWeight: ChaoSampler has no default weight (see
// ChaoSampler.Feed).
func NewChaoFromTunables[T any](t config.Tunables) (*ChaoSampler[T], error) {
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewChaoSampler[T](t.SampleSize, NewSource(seed))
}

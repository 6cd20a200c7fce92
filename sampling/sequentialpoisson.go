package sampling

import "math"

// NewSequentialPoissonSampler constructs a weighted reservoir sampler
// of size k using Ohlsson's sequential Poisson sampling: every item is
// keyed by weight/u for a fresh uniform draw u, and the k items with
// the largest keys are kept. Weight must lie in (0, +Inf); items
// default to weight 1 when fed through Feed.
func NewSequentialPoissonSampler[T any](k int, src Source) (*OrderSampler[T], error) {
	return NewOrderSampler[T](k, src, sequentialPoissonValidWeight, "(0,+Inf)", sequentialPoissonKey, 1.0, true)
}

func sequentialPoissonValidWeight(weight float64) bool {
	return weight > 0 && !math.IsInf(weight, 0)
}

func sequentialPoissonKey(weight, u float64) float64 {
	return weight / u
}

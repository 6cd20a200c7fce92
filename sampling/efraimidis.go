package sampling

import "math"

// NewEfraimidisSampler constructs a weighted reservoir sampler of size
// k using the Efraimidis-Spirakis A-Res algorithm: every item is keyed
// by u^(1/weight) for a fresh uniform draw u, and the k items with the
// largest keys are kept. Weight must lie in (0, +Inf); items default to
// weight 1 when fed through Feed.
func NewEfraimidisSampler[T any](k int, src Source) (*OrderSampler[T], error) {
	return NewOrderSampler[T](k, src, efraimidisValidWeight, "(0,+Inf)", efraimidisKey, 1.0, true)
}

func efraimidisValidWeight(weight float64) bool {
	return weight > 0 && !math.IsInf(weight, 0)
}

func efraimidisKey(weight, u float64) float64 {
	return math.Pow(u, 1.0/weight)
}

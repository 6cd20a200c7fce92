package sampling

// NewParetoSampler constructs a weighted reservoir sampler of size k
// using Rosen's Pareto sampling: every item is keyed by
// (u*w) / ((1-u)*(1-w)) for a fresh uniform draw u, and the k items
// with the largest keys are kept. Weight must lie strictly in (0,1);
// items default to weight 0.5 when fed through Feed, since a weight of
// exactly 1 is undefined by the key formula.
func NewParetoSampler[T any](k int, src Source) (*OrderSampler[T], error) {
	return NewOrderSampler[T](k, src, paretoValidWeight, "(0,1)", paretoKey, 0.5, true)
}

func paretoValidWeight(weight float64) bool {
	return weight > 0 && weight < 1
}

func paretoKey(weight, u float64) float64 {
	return (u * weight) / ((1 - u) * (1 - weight))
}

// Package collect adapts the reservoir samplers in the parent package
// to fold-style consumption of a sequence, for callers building a
// sample from something other than an explicit feed loop.
package collect

import "github.com/streamsample/reservoir/sampling"

// Fold drains seq through sampler, feeding every element in order, and
// returns the resulting sample. It mirrors the source's
// RandomSamplingCollector: a supplier (the already-constructed
// sampler), an accumulator (Feed), and a finisher (Sample). There is
// deliberately no combine step: reservoir samplers cannot be merged
// after the fact without re-deriving per-item inclusion probabilities,
// so Fold only supports a single sequential pass.
func Fold[T any](sampler sampling.Sampler[T], seq []T) ([]T, error) {
	if _, err := sampler.FeedSlice(seq); err != nil {
		return nil, err
	}
	return sampler.Sample(), nil
}

// FoldWeighted is Fold's counterpart for WeightedSampler, pairing each
// item with a weight drawn from weights at the same index.
func FoldWeighted[T any](sampler sampling.WeightedSampler[T], items []T, weights []float64) ([]T, error) {
	if _, err := sampler.FeedWeightedSlice(items, weights); err != nil {
		return nil, err
	}
	return sampler.Sample(), nil
}

package sampling

// Sampler is the contract every unweighted and weighted reservoir
// sampling algorithm in this package implements. A Sampler randomly
// retains a sample of SampleSize items from a stream of StreamSize
// items, where StreamSize may be arbitrarily large and is not known in
// advance.
//
// A Sampler does not track duplicates: feeding the same value twice is
// valid and the two feeds are treated as distinct stream items, even if
// they compare equal. The sample returned by Sample may therefore
// contain duplicate values.
//
// Implementations are not safe for concurrent use unless explicitly
// documented otherwise (only the Li L thread-safe engine is).
type Sampler[T any] interface {
	// Feed consumes one item from the stream, returning true if the
	// sample changed as a result.
	Feed(item T) (bool, error)

	// FeedSlice consumes every item in items in order, returning true
	// iff any individual Feed call returned true.
	FeedSlice(items []T) (bool, error)

	// SampleSize returns k, the configured target sample size. It never
	// changes after construction.
	SampleSize() int

	// StreamSize returns the number of items fed so far.
	StreamSize() int64

	// Sample returns a live view of the current reservoir. Mutating the
	// sampler via Feed is reflected in subsequently-read slots of this
	// view; callers who need a stable snapshot must copy it.
	Sample() []T
}

// WeightedSampler extends Sampler with a weighted feed operation. The
// interpretation of weight is algorithm-specific (see the per-algorithm
// constructors); the only cross-algorithm guarantee is that a higher
// weight implies a higher probability of inclusion in the final sample.
type WeightedSampler[T any] interface {
	Sampler[T]

	// FeedWeighted consumes one (item, weight) pair from the stream.
	FeedWeighted(item T, weight float64) (bool, error)

	// FeedWeightedSlice consumes paired items and weights in lockstep.
	// It returns ErrMismatchedLengths if the two slices disagree in
	// length, leaving prior state untouched.
	FeedWeightedSlice(items []T, weights []float64) (bool, error)
}

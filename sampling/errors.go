package sampling

import "errors"

// Sentinel errors returned by the constructors and feed operations of
// every sampler in this package. Wrap one of these with fmt.Errorf and
// "%w" to attach detail; callers that need to branch on the failure
// category should use errors.Is against the sentinel, not string
// matching.
var (
	// ErrInvalidSampleSize is returned when a sampler is constructed
	// with a sample size k that is not a positive integer.
	ErrInvalidSampleSize = errors.New("invalid sample size")

	// ErrNullRandom is returned when a sampler is constructed with a
	// nil random Source.
	ErrNullRandom = errors.New("random source was nil")

	// ErrMismatchedLengths is returned by the paired-iterator feed
	// operations when the items and weights sequences disagree in
	// length.
	ErrMismatchedLengths = errors.New("items and weights have mismatched lengths")

	// ErrIllegalWeight is returned when a weight argument falls outside
	// the range an algorithm accepts. The wrapping error includes the
	// algorithm's declared range.
	ErrIllegalWeight = errors.New("illegal weight")

	// ErrStreamOverflow is returned when a sampler's internal counter or
	// accumulator has saturated. The sampler instance is unusable after
	// this error is returned; there is no retry and no reset.
	ErrStreamOverflow = errors.New("stream overflow")
)

package sampling

import "fmt"

// ReservoirSampler is the generic unweighted reservoir engine shared by
// Waterman (Algorithm R), Vitter X, Vitter Z and Li L. It generalizes
// the source's AbstractUnweightedRandomSampling/AbstractRandomSampling
// class skeleton into a single type parameterized by a
// SkipFunctionFactory, per the design notes: "an 'unweighted engine'
// parameterized by a SkipGenerator."
type ReservoirSampler[T any] struct {
	k    int
	src  Source
	skip SkipFunction

	n       int64
	data    []T
	pending int64
}

// NewReservoirSampler constructs an unweighted engine of sample size k
// using the given skip-function factory and random source. The first
// skip length is drawn eagerly, at construction time, exactly as the
// source's constructors do: it assumes the reservoir fills
// deterministically with the first k feeds, so the skip governing the
// gap right after it fills must already be known by the time that
// (k+1)-th feed arrives.
func NewReservoirSampler[T any](k int, factory SkipFunctionFactory, src Source) (*ReservoirSampler[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: sample size was %d, must be at least 1", ErrInvalidSampleSize, k)
	}
	if src == nil {
		return nil, ErrNullRandom
	}
	skip := factory(k, src)
	pending, err := skip.Skip()
	if err != nil {
		return nil, err
	}
	return &ReservoirSampler[T]{
		k:       k,
		src:     src,
		skip:    skip,
		data:    make([]T, 0, k),
		pending: pending,
	}, nil
}

// Feed implements Sampler.
func (r *ReservoirSampler[T]) Feed(item T) (bool, error) {
	if r.n == maxInt64 {
		return false, ErrStreamOverflow
	}
	r.n++

	if len(r.data) < r.k {
		r.data = append(r.data, item)
		return true, nil
	}

	if r.pending > 0 {
		r.pending--
		return false, nil
	}

	r.data[r.src.Intn(r.k)] = item
	next, err := r.skip.Skip()
	if err != nil {
		return false, err
	}
	r.pending = next
	return true, nil
}

// FeedSlice implements Sampler.
func (r *ReservoirSampler[T]) FeedSlice(items []T) (bool, error) {
	changed := false
	for _, item := range items {
		ok, err := r.Feed(item)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// SampleSize implements Sampler.
func (r *ReservoirSampler[T]) SampleSize() int { return r.k }

// StreamSize implements Sampler.
func (r *ReservoirSampler[T]) StreamSize() int64 { return r.n }

// Sample implements Sampler. The returned slice is a live view backed
// by the same storage the engine mutates.
func (r *ReservoirSampler[T]) Sample() []T { return r.data }

const maxInt64 = 1<<63 - 1

package sampling

import (
	"fmt"
	"math"
	"sort"
)

// ChaoSampler is a strictly-proportional weighted reservoir sampler of
// size k: unlike the order-sampling variants, every item's long-run
// inclusion probability is exactly min(1, weight*k/totalWeight), not an
// approximation induced by a random key ordering.
//
// Internally it partitions its reservoir slots into two regions:
// "certain" slots, whose weight is large enough relative to the stream
// seen so far that they are guaranteed a place, and "feasible" slots,
// which compete for eviction each time a new item arrives. On every
// feed, a slot may migrate from certain to feasible as the running
// total weight shifts the threshold; the migration only ever flows in
// that direction within a single feed, which is what lets the scan stop
// updating its running totals the moment one item fails the certain
// threshold.
//
// Unlike the straightforward certain/feasible slices of the source's
// TreeSet-based design, slots here are addressed by a stable index:
// items and slots share that index space, a slot is only ever
// overwritten in place by a later eviction, and region membership is
// tracked per slot rather than by which slice an entry lives in. That
// is what lets Sample return items directly as a live view, the same
// property the unweighted and order-sampling engines have.
type ChaoSampler[T any] struct {
	k   int
	src Source

	n         int64
	weightSum float64

	items []T
	slots []chaoSlot
}

type chaoSlot struct {
	weight  float64
	certain bool
}

// NewChaoSampler constructs a strictly-proportional weighted reservoir
// sampler of size k. Weight must lie in (0, +Inf); there is no default
// weight, every Feed call for a ChaoSampler must go through
// FeedWeighted.
func NewChaoSampler[T any](k int, src Source) (*ChaoSampler[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: sample size was %d, must be at least 1", ErrInvalidSampleSize, k)
	}
	if src == nil {
		return nil, ErrNullRandom
	}
	return &ChaoSampler[T]{
		k:     k,
		src:   src,
		items: make([]T, 0, k),
		slots: make([]chaoSlot, 0, k),
	}, nil
}

// Feed implements Sampler. ChaoSampler has no sensible default weight,
// so Feed always reports ErrIllegalWeight; use FeedWeighted.
func (c *ChaoSampler[T]) Feed(_ T) (bool, error) {
	return false, fmt.Errorf("%w: ChaoSampler requires an explicit weight, use FeedWeighted", ErrIllegalWeight)
}

// FeedSlice implements Sampler; see Feed.
func (c *ChaoSampler[T]) FeedSlice(items []T) (bool, error) {
	if len(items) == 0 {
		return false, nil
	}
	return false, fmt.Errorf("%w: ChaoSampler requires an explicit weight, use FeedWeightedSlice", ErrIllegalWeight)
}

// FeedWeighted implements WeightedSampler.
func (c *ChaoSampler[T]) FeedWeighted(item T, weight float64) (bool, error) {
	if c.n == maxInt64 {
		return false, ErrStreamOverflow
	}
	if !(weight > 0) || math.IsInf(weight, 0) {
		return false, fmt.Errorf("%w: weight %v outside valid range (0,+Inf)", ErrIllegalWeight, weight)
	}
	c.n++
	c.weightSum += weight
	if math.IsInf(c.weightSum, 0) {
		return false, ErrStreamOverflow
	}

	if c.n <= int64(c.k) {
		c.items = append(c.items, item)
		c.slots = append(c.slots, chaoSlot{weight: weight, certain: true})
		return true, nil
	}

	w := weight * float64(c.k) / c.weightSum

	// certainIdx holds the slot indices currently marked certain, sorted
	// descending by weight: the scan must test the heaviest certain
	// entries first, since whether a lighter entry stays certain depends
	// on how much weight the heavier entries already claimed.
	certainIdx := make([]int, 0, len(c.slots))
	for i, s := range c.slots {
		if s.certain {
			certainIdx = append(certainIdx, i)
		}
	}
	sort.Slice(certainIdx, func(a, b int) bool {
		return c.slots[certainIdx[a]].weight > c.slots[certainIdx[b]].weight
	})

	keep := make([]bool, len(c.slots))
	var possibleIdx []int
	var possibleDist []float64

	// If the new item is itself overweight (w >= 1), it belongs in the
	// impossible-to-drop region from the start of the scan, the same as
	// any existing certain entry that fails the fo>=1 test below.
	impossibleCount := 0
	impossibleSum := 0.0
	if w >= 1 {
		impossibleCount = 1
		impossibleSum = weight
	}
	for _, idx := range certainIdx {
		entryWeight := c.slots[idx].weight
		fo := entryWeight * float64(c.k-impossibleCount) / (c.weightSum - impossibleSum)
		if fo >= 1 {
			impossibleCount++
			impossibleSum += entryWeight
			keep[idx] = true
			continue
		}
		dropDensity := (1 - fo) / math.Min(w, 1)
		possibleIdx = append(possibleIdx, idx)
		possibleDist = append(possibleDist, dropDensity)
	}

	add := c.src.Float64()
	included := w > add

	evictIdx := -1
	if included {
		pick := selectWeighted(possibleDist, c.src.Float64())
		if pick >= 0 && pick < len(possibleIdx) {
			evictIdx = possibleIdx[pick]
		} else {
			var feasibleIdx []int
			for i, s := range c.slots {
				if !s.certain {
					feasibleIdx = append(feasibleIdx, i)
				}
			}
			if len(feasibleIdx) > 0 {
				evictIdx = feasibleIdx[c.src.Intn(len(feasibleIdx))]
			}
		}
	}

	// Every certain slot that failed the fo>=1 test (i.e. is in
	// possibleIdx, not keep) demotes to feasible, unless it is the one
	// about to be overwritten below.
	for _, idx := range certainIdx {
		if idx == evictIdx {
			continue
		}
		if !keep[idx] {
			c.slots[idx].certain = false
		}
	}

	if included && evictIdx >= 0 {
		c.items[evictIdx] = item
		c.slots[evictIdx] = chaoSlot{weight: weight, certain: w >= 1}
	}

	return included, nil
}

// FeedWeightedSlice implements WeightedSampler.
func (c *ChaoSampler[T]) FeedWeightedSlice(items []T, weights []float64) (bool, error) {
	if len(items) != len(weights) {
		return false, ErrMismatchedLengths
	}
	changed := false
	for i, item := range items {
		ok, err := c.FeedWeighted(item, weights[i])
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// SampleSize implements Sampler.
func (c *ChaoSampler[T]) SampleSize() int { return c.k }

// StreamSize implements Sampler.
func (c *ChaoSampler[T]) StreamSize() int64 { return c.n }

// Sample implements Sampler. items is a live view: a slot, once
// assigned, is only ever overwritten in place by a later eviction,
// never relocated, so a slice obtained from an earlier call observes
// later FeedWeighted calls exactly as ReservoirSampler's does. The
// returned order is neither insertion order, weight order, nor key
// order.
func (c *ChaoSampler[T]) Sample() []T { return c.items }

package sampling

import (
	"container/heap"
	"fmt"
)

// orderKeyFunc computes the order-sampling key for a weight and a fresh
// uniform draw. Each of Efraimidis, Sequential Poisson and Pareto
// supplies its own.
type orderKeyFunc func(weight, u float64) float64

// OrderSampler is the generic key-ordered weighted reservoir engine
// shared by the Efraimidis A-Res, Sequential Poisson and Pareto
// variants. Every item is stamped with a key computed from its weight
// and a fresh random draw; the reservoir keeps the sampleSize items
// with the best keys, using a heap to evict the worst key in O(log k)
// whenever a better one arrives.
//
// items and slots are addressed by a stable slot index: a slot, once
// assigned, is only ever overwritten in place by a later eviction,
// never relocated. The heap permutes a separate idx slice of slot
// indices, not items/slots themselves, which is what lets Sample
// return items directly as a live view backed by the same array the
// engine mutates, exactly like the plain reservoir engine.
//
// "Best" is keepLargest ? largest key : smallest key. All three current
// variants keep the largest key, with the heap root holding the
// current worst survivor (the smallest key among the k currently kept)
// so a beating candidate only ever has to displace the root; the
// keepLargest=false direction exists so a future key-ordered variant
// that wants "smallest wins" doesn't need a second heap implementation.
type OrderSampler[T any] struct {
	k           int
	src         Source
	key         orderKeyFunc
	validWeight func(weight float64) bool
	weightRange string
	defaultW    float64
	keepLargest bool

	n     int64
	items []T
	slots []Weighted[T]
	idx   []int
}

// NewOrderSampler constructs a key-ordered weighted reservoir of size k.
// validWeight reports whether a weight is acceptable to this variant;
// weightRange is the human-readable range used in ErrIllegalWeight
// messages; key computes the order key from a weight and a fresh
// uniform draw; keepLargest selects which extreme of the key space
// survives eviction.
func NewOrderSampler[T any](k int, src Source, validWeight func(float64) bool, weightRange string, key orderKeyFunc, defaultWeight float64, keepLargest bool) (*OrderSampler[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: sample size was %d, must be at least 1", ErrInvalidSampleSize, k)
	}
	if src == nil {
		return nil, ErrNullRandom
	}
	return &OrderSampler[T]{
		k:           k,
		src:         src,
		key:         key,
		validWeight: validWeight,
		weightRange: weightRange,
		defaultW:    defaultWeight,
		keepLargest: keepLargest,
		items:       make([]T, 0, k),
		slots:       make([]Weighted[T], 0, k),
	}, nil
}

// Feed implements Sampler, using the variant's default weight.
func (o *OrderSampler[T]) Feed(item T) (bool, error) {
	return o.FeedWeighted(item, o.defaultW)
}

// FeedSlice implements Sampler.
func (o *OrderSampler[T]) FeedSlice(items []T) (bool, error) {
	changed := false
	for _, item := range items {
		ok, err := o.Feed(item)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// FeedWeighted implements WeightedSampler.
func (o *OrderSampler[T]) FeedWeighted(item T, weight float64) (bool, error) {
	if !o.validWeight(weight) {
		return false, fmt.Errorf("%w: weight %v outside valid range %s", ErrIllegalWeight, weight, o.weightRange)
	}
	if o.n == maxInt64 {
		return false, ErrStreamOverflow
	}
	o.n++

	u := ExclusiveFloat64(o.src)
	candidate := NewWeighted(item, o.key(weight, u))
	h := orderHeap[T]{o}

	if len(o.items) < o.k {
		o.items = append(o.items, item)
		o.slots = append(o.slots, candidate)
		heap.Push(h, len(o.items)-1)
		return true, nil
	}

	root := o.slots[o.idx[0]]
	if o.beats(candidate, root) {
		pos := o.idx[0]
		o.items[pos] = item
		o.slots[pos] = candidate
		heap.Fix(h, 0)
		return true, nil
	}
	return false, nil
}

// FeedWeightedSlice implements WeightedSampler.
func (o *OrderSampler[T]) FeedWeightedSlice(items []T, weights []float64) (bool, error) {
	if len(items) != len(weights) {
		return false, ErrMismatchedLengths
	}
	changed := false
	for i, item := range items {
		ok, err := o.FeedWeighted(item, weights[i])
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// SampleSize implements Sampler.
func (o *OrderSampler[T]) SampleSize() int { return o.k }

// StreamSize implements Sampler.
func (o *OrderSampler[T]) StreamSize() int64 { return o.n }

// Sample implements Sampler. items is a live view: slot positions are
// assigned once and only ever overwritten in place by a later
// eviction, never relocated, so a slice obtained from an earlier call
// observes later Feed/FeedWeighted calls exactly as ReservoirSampler's
// does. The order is the slots' assignment order, not key order; per
// the package's Non-goals callers must not rely on any particular
// ordering.
func (o *OrderSampler[T]) Sample() []T { return o.items }

// beats reports whether candidate should replace root as a survivor.
func (o *OrderSampler[T]) beats(candidate, root Weighted[T]) bool {
	if o.keepLargest {
		return root.Less(candidate)
	}
	return candidate.Less(root)
}

// orderHeap is a container/heap.Interface over slot indices into the
// owning sampler's items/slots arrays. It permutes idx, never
// items/slots themselves, which is what keeps items a stable live view:
// the heap's root, idx[0], is always the current worst survivor (the
// smallest key when keepLargest is true, the largest key when it is
// false), so Fix on a worst-survivor replacement is the only
// rebalancing operation FeedWeighted ever needs.
type orderHeap[T any] struct{ o *OrderSampler[T] }

func (h orderHeap[T]) Len() int { return len(h.o.idx) }

func (h orderHeap[T]) Less(i, j int) bool {
	a, b := h.o.slots[h.o.idx[i]], h.o.slots[h.o.idx[j]]
	if h.o.keepLargest {
		return a.Less(b)
	}
	return b.Less(a)
}

func (h orderHeap[T]) Swap(i, j int) { h.o.idx[i], h.o.idx[j] = h.o.idx[j], h.o.idx[i] }

func (h orderHeap[T]) Push(x any) { h.o.idx = append(h.o.idx, x.(int)) }

func (h orderHeap[T]) Pop() any {
	n := len(h.o.idx)
	v := h.o.idx[n-1]
	h.o.idx = h.o.idx[:n-1]
	return v
}

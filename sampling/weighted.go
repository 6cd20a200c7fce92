package sampling

import "sync/atomic"

// tiebreakCounter hands out strictly increasing tie-breaker values to
// every Weighted created across the process. It is shared rather than
// per-sampler: uniqueness only needs to hold within a single heap, and
// a process-wide counter is simpler than plumbing a per-instance one
// through every constructor.
var tiebreakCounter atomic.Uint64

// Weighted pairs a payload with an order-sampling key. It is the Go
// counterpart of the source's Weighted<T>, rearchitected per the design
// notes: instead of a lazily-generated, unbounded per-instance sequence
// of tie-breaking integers, every Weighted is stamped at construction
// time with a monotonically increasing counter value drawn from a
// shared atomic. Comparing (Key, tiebreak) lexicographically gives the
// same guarantee the source's scheme gave — Compare(a, b) == 0 iff a
// and b are the same instance — without unbounded growth under
// adversarial collisions.
type Weighted[T any] struct {
	Item     T
	Key      float64
	tiebreak uint64
}

// NewWeighted stamps item with key and a fresh tie-breaker.
func NewWeighted[T any](item T, key float64) Weighted[T] {
	return Weighted[T]{
		Item:     item,
		Key:      key,
		tiebreak: tiebreakCounter.Add(1),
	}
}

// Less reports whether w sorts before o under ascending key order, with
// ties broken by construction order. It never returns equal: distinct
// Weighted values always have distinct tiebreak stamps.
func (w Weighted[T]) Less(o Weighted[T]) bool {
	if w.Key != o.Key {
		return w.Key < o.Key
	}
	return w.tiebreak < o.tiebreak
}

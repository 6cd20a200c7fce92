package sampling

import "math"

// NewLiLSampler constructs an unweighted reservoir sampler of size k
// using Li's Algorithm L, the simplest of the constant-amortized-time
// variants: each call redraws a single running threshold W and derives
// the skip length from it in closed form, with no rejection loop.
func NewLiLSampler[T any](k int, src Source) (*ReservoirSampler[T], error) {
	return NewReservoirSampler[T](k, liLSkipFunctionFactory, src)
}

func liLSkipFunctionFactory(sampleSize int, src Source) SkipFunction {
	inverse := 1.0 / float64(sampleSize)
	return &liLSkip{
		inverse: inverse,
		w:       math.Pow(ExclusiveFloat64(src), inverse),
		src:     src,
	}
}

type liLSkip struct {
	inverse float64
	w       float64
	src     Source
}

func (l *liLSkip) Skip() (int64, error) {
	r1 := ExclusiveFloat64(l.src)
	r2 := ExclusiveFloat64(l.src)

	skipDouble := math.Log(r1) / math.Log(1-l.w)

	// A negative skipDouble, including -Inf, and one too large for
	// int64 both fail with StreamOverflow.
	if skipDouble < 0 || skipDouble > math.MaxInt64 {
		return 0, ErrStreamOverflow
	}

	skip := int64(skipDouble)
	l.w *= math.Pow(r2, l.inverse)
	return skip, nil
}

package sampling

// NewVitterXSampler constructs an unweighted reservoir sampler of size
// k using Vitter's Algorithm X: the exact same acceptance distribution
// as Algorithm R, but the skip length to the next accepted item is
// drawn directly instead of simulated one stream item at a time.
func NewVitterXSampler[T any](k int, src Source) (*ReservoirSampler[T], error) {
	return NewReservoirSampler[T](k, vitterXSkipFunctionFactory, src)
}

func vitterXSkipFunctionFactory(sampleSize int, src Source) SkipFunction {
	return &vitterXSkip{sampleSize: int64(sampleSize), streamSize: int64(sampleSize), src: src}
}

type vitterXSkip struct {
	sampleSize int64
	streamSize int64
	src        Source
}

func (x *vitterXSkip) Skip() (int64, error) {
	x.streamSize++
	if x.streamSize <= 0 {
		return 0, ErrStreamOverflow
	}

	r := x.src.Float64()
	var skipCount int64
	quot := float64(x.streamSize-x.sampleSize) / float64(x.streamSize)

	for quot > r && x.streamSize > 0 {
		skipCount++
		x.streamSize++
		if x.streamSize <= 0 {
			return 0, ErrStreamOverflow
		}
		quot = (quot * float64(x.streamSize-x.sampleSize)) / float64(x.streamSize)
	}

	return skipCount, nil
}

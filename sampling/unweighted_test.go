package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unweightedCtor func(k int, src Source) (*ReservoirSampler[int], error)

func unweightedVariants() map[string]unweightedCtor {
	return map[string]unweightedCtor{
		"waterman": NewWatermanSampler[int],
		"vitterx":  NewVitterXSampler[int],
		"vitterz":  NewVitterZSampler[int],
		"lil":      NewLiLSampler[int],
	}
}

func TestUnweightedRejectsInvalidSampleSize(t *testing.T) {
	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			_, err := ctor(0, NewSource(1))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSampleSize)
		})
	}
}

func TestUnweightedRejectsNilSource(t *testing.T) {
	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			_, err := ctor(5, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNullRandom)
		})
	}
}

func TestUnweightedKeepsAllItemsWhenStreamSmallerThanK(t *testing.T) {
	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			s, err := ctor(10, NewSource(1))
			require.NoError(t, err)

			for i := 0; i < 5; i++ {
				changed, err := s.Feed(i)
				require.NoError(t, err)
				assert.True(t, changed)
			}

			assert.Equal(t, 5, len(s.Sample()))
			assert.Equal(t, int64(5), s.StreamSize())
			assert.Equal(t, 10, s.SampleSize())
		})
	}
}

func TestUnweightedSampleSizeNeverExceedsK(t *testing.T) {
	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			s, err := ctor(3, NewSource(7))
			require.NoError(t, err)

			for i := 0; i < 5000; i++ {
				_, err := s.Feed(i)
				require.NoError(t, err)
			}

			assert.Len(t, s.Sample(), 3)
			assert.Equal(t, int64(5000), s.StreamSize())
		})
	}
}

func TestUnweightedSampleSizeOfOne(t *testing.T) {
	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			s, err := ctor(1, NewSource(3))
			require.NoError(t, err)

			for i := 0; i < 200; i++ {
				_, err := s.Feed(i)
				require.NoError(t, err)
			}

			assert.Len(t, s.Sample(), 1)
		})
	}
}

// TestUnweightedInclusionFrequencyConvergesToKOverN exercises spec §8's
// quantified invariant for unweighted engines: over many independent
// runs, the empirical inclusion frequency of each stream position
// converges to k/n.
func TestUnweightedInclusionFrequencyConvergesToKOverN(t *testing.T) {
	const k = 5
	const n = 20
	const trials = 4000
	const want = float64(k) / float64(n)
	const tolerance = 0.15 * want

	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			counts := make([]int, n)
			for trial := 0; trial < trials; trial++ {
				s, err := ctor(k, NewSource(int64(trial)+1))
				require.NoError(t, err)
				for i := 0; i < n; i++ {
					_, err := s.Feed(i)
					require.NoError(t, err)
				}
				for _, item := range s.Sample() {
					counts[item]++
				}
			}
			for i := 0; i < n; i++ {
				freq := float64(counts[i]) / float64(trials)
				assert.InDeltaf(t, want, freq, tolerance, "position %d frequency %v want %v", i, freq, want)
			}
		})
	}
}

func TestUnweightedFeedSliceMatchesRepeatedFeed(t *testing.T) {
	for name, ctor := range unweightedVariants() {
		t.Run(name, func(t *testing.T) {
			s, err := ctor(4, NewSource(99))
			require.NoError(t, err)

			changed, err := s.FeedSlice([]int{1, 2, 3, 4, 5, 6})
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, int64(6), s.StreamSize())
			assert.Len(t, s.Sample(), 4)

			r, err := ctor(4, NewSource(99))
			require.NoError(t, err)
			for _, item := range []int{1, 2, 3, 4, 5, 6} {
				_, err := r.Feed(item)
				require.NoError(t, err)
			}
			assert.Equal(t, r.StreamSize(), s.StreamSize())
			assert.Equal(t, r.Sample(), s.Sample())
		})
	}
}

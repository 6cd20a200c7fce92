package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestThreadSafeLiLRejectsInvalidConstruction(t *testing.T) {
	_, err := NewThreadSafeLiLSampler[int](0, NewSource(1))
	assert.ErrorIs(t, err, ErrInvalidSampleSize)

	_, err = NewThreadSafeLiLSampler[int](5, nil)
	assert.ErrorIs(t, err, ErrNullRandom)
}

func TestThreadSafeLiLKeepsAllItemsDuringWarmup(t *testing.T) {
	s, err := NewThreadSafeLiLSampler[int](10, NewSource(1))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		changed, err := s.Feed(i)
		require.NoError(t, err)
		assert.True(t, changed)
	}

	assert.Len(t, s.Sample(), 5)
}

// TestThreadSafeLiLInclusionFrequencyConvergesToKOverN exercises spec
// §8's quantified invariant for the thread-safe engine: under
// concurrent producers, each distinct element's empirical inclusion
// frequency converges to k/n, the same as the single-threaded variant.
func TestThreadSafeLiLInclusionFrequencyConvergesToKOverN(t *testing.T) {
	const k = 5
	const n = 20
	const producers = 4
	const trials = 1500
	const want = float64(k) / float64(n)
	const tolerance = 0.2 * want

	counts := make([]int, n)
	for trial := 0; trial < trials; trial++ {
		s, err := NewThreadSafeLiLSampler[int](k, NewSource(int64(trial)+1))
		require.NoError(t, err)

		var g errgroup.Group
		perProducer := n / producers
		for p := 0; p < producers; p++ {
			p := p
			g.Go(func() error {
				for i := 0; i < perProducer; i++ {
					item := p*perProducer + i
					if _, err := s.Feed(item); err != nil {
						return err
					}
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		for _, item := range s.Sample() {
			counts[item]++
		}
	}

	for i := 0; i < n; i++ {
		freq := float64(counts[i]) / float64(trials)
		assert.InDeltaf(t, want, freq, tolerance, "element %d frequency %v want %v", i, freq, want)
	}
}

func TestThreadSafeLiLConcurrentFeedRespectsSampleSize(t *testing.T) {
	const k = 5
	const producers = 8
	const perProducer = 2000

	s, err := NewThreadSafeLiLSampler[int](k, NewSource(17))
	require.NoError(t, err)

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				if _, err := s.Feed(p*perProducer + i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(producers*perProducer), s.StreamSize())
	assert.Len(t, s.Sample(), k)
}

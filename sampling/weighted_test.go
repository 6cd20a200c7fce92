package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedLessByKey(t *testing.T) {
	a := NewWeighted("a", 1.0)
	b := NewWeighted("b", 2.0)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestWeightedLessTiebreaksByConstructionOrder(t *testing.T) {
	a := NewWeighted("a", 1.0)
	b := NewWeighted("b", 1.0)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

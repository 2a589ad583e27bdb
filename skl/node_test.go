package skl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_ValRoundTrip(t *testing.T) {
	tail := newSentinel[int, string]()
	n := newNode[int, string](5, "five", 3, tail)

	assert.Equal(t, 5, n.key)
	assert.Equal(t, "five", n.loadVal())
	assert.True(t, n.inserting.Load())

	n.storeVal("cinco")
	assert.Equal(t, "cinco", n.loadVal())

	for i := int32(0); i < 3; i++ {
		assert.Same(t, tail, n.next[i].load())
	}
}

func TestNewSentinel_ZeroValue(t *testing.T) {
	s := newSentinel[int, string]()
	assert.Equal(t, int32(NumLevels), s.level)
	assert.Equal(t, "", s.loadVal())
}

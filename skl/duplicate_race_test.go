package skl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_DuplicateKeyRace mirrors the teacher's
// TestXConcSkl_Duplicate_SerialProcessing shape: many goroutines race to
// insert the same key, and the quiescent state must hold exactly one
// entry whose value came from one of the racers (property 5, concurrent
// variant).
func TestConcurrency_DuplicateKeyRace(t *testing.T) {
	q := New[int, int](4)
	const writers = 32

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			q.Insert(1, i)
		}(i)
	}
	wg.Wait()

	arr := q.ToArray()
	require.Len(t, arr, 1)
	assert.Equal(t, 1, arr[0].Key)
	assert.True(t, arr[0].Val >= 0 && arr[0].Val < writers)
}

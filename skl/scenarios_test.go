package skl

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_S1_InsertOrder(t *testing.T) {
	q := New[int, int](10)
	q.Insert(1, 1)
	q.Insert(2, 2)
	q.Insert(3, 3)

	assert.Equal(t, []Pair[int, int]{{1, 1}, {2, 2}, {3, 3}}, q.ToArray())
}

func TestScenario_S2_OutOfOrderInsertAndDuplicateOverwrite(t *testing.T) {
	q := New[int, int](10)
	q.Insert(2, 2)
	q.Insert(1, 1)
	q.Insert(3, 3)
	q.Insert(2, 10)

	assert.Equal(t, []Pair[int, int]{{1, 1}, {2, 10}, {3, 3}}, q.ToArray())
}

func TestScenario_S3_SingleInsertThenDrain(t *testing.T) {
	q := New[int, int](10)
	q.Insert(1, 1)

	k, v, ok := q.DeleteMin()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, 1, v)

	assert.Empty(t, q.ToArray())

	_, _, ok = q.DeleteMin()
	assert.False(t, ok)
}

func TestScenario_S4_BulkInsertThenPartialDrain(t *testing.T) {
	q := New[int, int](10)
	for i := 1; i <= 8000; i++ {
		q.Insert(i, i)
	}
	for i := 1; i <= 7200; i++ {
		k, v, ok := q.DeleteMin()
		require.True(t, ok)
		assert.Equal(t, i, k)
		assert.Equal(t, i, v)
	}

	arr := q.ToArray()
	require.Len(t, arr, 800)
	for i, p := range arr {
		assert.Equal(t, 7201+i, p.Key)
		assert.Equal(t, 7201+i, p.Val)
	}
}

func TestScenario_S5_ConcurrentInsertDisjointRanges(t *testing.T) {
	q := New[int, int](10)
	const threads = 8
	const perThread = 1000

	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func(i int) {
			defer wg.Done()
			base := i * perThread
			for j := 1; j <= perThread; j++ {
				q.Insert(base+j, base+j)
			}
		}(i)
	}
	wg.Wait()

	arr := q.ToArray()
	require.Len(t, arr, threads*perThread)
	for i, p := range arr {
		assert.Equal(t, i+1, p.Key)
	}
}

func TestScenario_S6_ConcurrentDrain(t *testing.T) {
	q := New[int, int](10)
	for i := 1; i <= 8000; i++ {
		q.Insert(i, i)
	}

	const threads = 8
	const perThread = 900

	var mu sync.Mutex
	seen := make(map[int]int, threads*perThread)
	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perThread; j++ {
				k, v, ok := q.DeleteMin()
				require.True(t, ok)
				mu.Lock()
				seen[k] = v
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, threads*perThread)
	for k, v := range seen {
		assert.GreaterOrEqual(t, k, 1)
		assert.LessOrEqual(t, k, 7200)
		assert.Equal(t, k, v)
	}

	arr := q.ToArray()
	require.Len(t, arr, 800)
	for i, p := range arr {
		assert.Equal(t, 7201+i, p.Key)
	}
}

func TestScenario_S7_MixedInsertAndDeleteNoLostUpdates(t *testing.T) {
	q := New[int, int](10)
	const inserters = 8
	const keysPerInserter = 1000
	const deleters = 8
	const opsPerDeleter = 100

	var wg sync.WaitGroup
	wg.Add(inserters + deleters)

	for i := 0; i < inserters; i++ {
		go func(i int) {
			defer wg.Done()
			base := i * keysPerInserter
			for j := 1; j <= keysPerInserter; j++ {
				q.Insert(base+j, base+j)
			}
		}(i)
	}

	var mu sync.Mutex
	returned := make(map[int]int)
	for i := 0; i < deleters; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerDeleter; j++ {
				if k, v, ok := q.DeleteMin(); ok {
					mu.Lock()
					returned[k] = v
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	remaining := q.ToArray()
	total := make(map[int]int, inserters*keysPerInserter)
	for k, v := range returned {
		total[k] = v
	}
	for _, p := range remaining {
		total[p.Key] = p.Val
	}

	require.Len(t, total, inserters*keysPerInserter)
	keys := make([]int, 0, len(total))
	for k, v := range total {
		assert.Equal(t, k, v)
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for i, k := range keys {
		assert.Equal(t, i+1, k)
	}
}

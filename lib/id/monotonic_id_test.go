package id

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicCounter_Next(t *testing.T) {
	c := NewMonotonicCounter()
	assert.Equal(t, uint64(1), c.Next())
	assert.Equal(t, uint64(2), c.Next())
	assert.Equal(t, uint64(2), c.Load())
}

func TestMonotonicCounter_NeverZero(t *testing.T) {
	c := &monotonicCounter{val: ^uint64(0)}
	v := c.Next()
	assert.NotZero(t, v)
}

func TestMonotonicCounter_ConcurrentUnique(t *testing.T) {
	c := NewMonotonicCounter()
	const n = 200
	seen := make(chan uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			seen <- c.Next()
		}()
	}
	wg.Wait()
	close(seen)
	unique := make(map[uint64]struct{}, n)
	for v := range seen {
		unique[v] = struct{}{}
	}
	assert.Len(t, unique, n)
}

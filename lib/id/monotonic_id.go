package id

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const cacheLinePadSize = unsafe.Sizeof(cpu.CacheLinePad{})

// Counter is a monotonically increasing, never-zero generator, used by the
// skiplist as its reclaimer's epoch clock.
type Counter interface {
	Next() uint64
	Load() uint64
}

// monotonicCounter occupies a whole cache line (pad+data+pad) so that
// goroutines reading it on every queue operation and bumping it on every
// retired node never share a cache line with unrelated, independently-written
// data.
// L1D cache: cat /sys/devices/system/cpu/cpu0/cache/index0/coherency_line_size
// MESI (Modified-Exclusive-Shared-Invalid)
// RAM data -> L3 cache -> L2 cache -> L1 cache -> CPU register.
type monotonicCounter struct {
	_   [cacheLinePadSize - unsafe.Sizeof(uint64(0))]byte // padding, avoid false sharing
	val uint64
	_   [cacheLinePadSize - unsafe.Sizeof(uint64(0))]byte // padding, avoid false sharing
}

func (c *monotonicCounter) Next() uint64 {
	// Golang atomic add with LOCK prefix implies a Happens-Before edge;
	// a bare load would not give us that. https://go.dev/ref/mem
	var v uint64
	if v = atomic.AddUint64(&c.val, 1); v == 0 {
		v = atomic.AddUint64(&c.val, 1)
	}
	return v
}

func (c *monotonicCounter) Load() uint64 {
	return atomic.LoadUint64(&c.val)
}

// NewMonotonicCounter returns a fresh, zero-initialized Counter.
func NewMonotonicCounter() Counter {
	return &monotonicCounter{}
}

package skl

import (
	"sync"
	"sync/atomic"

	"github.com/benz9527/lfskl/lib/id"
)

// Reclaimer is notified, at most once per node, after the deleter has
// physically unlinked a key from the structure during a head swing.
//
// Go's garbage collector already makes it safe to hold and dereference a
// stale node pointer -- the hazard the source algorithm's reclamation step
// guards against is reusing a node's backing memory for a new Insert while
// another goroutine is still mid-traversal through the old identity, not a
// use-after-free. That reuse decision stays internal to the queue (see
// epochReclaimer); Retire is purely an external notification hook for
// callers that want to know when a key has left the structure for good.
type Reclaimer[K any, V any] interface {
	Retire(key K, val V)
}

type noopReclaimer[K any, V any] struct{}

func (noopReclaimer[K, V]) Retire(K, V) {}

const epochSlots = 128

// epochReclaimer recycles retired nodes into a sync.Pool only once no
// bracketed queue operation that could still hold the old pointer is in
// flight -- epoch-based reclamation, the systems substitute for a tracing
// collector that spec.md's reclamation step calls for.
//
// Every public Queue operation brackets itself with enter/exit, claiming a
// slot by round-robin and recording the epoch in force at entry. A node
// retired at epoch e is safe to recycle once every active slot's recorded
// epoch is either unset (0) or past e. Slot sharing under heavy fan-out
// only makes the watermark more conservative, never unsafe.
type epochReclaimer[K any, V any] struct {
	clock   id.Counter
	next    atomic.Uint64
	readers [epochSlots]atomic.Uint64
	pool    sync.Pool
	notify  Reclaimer[K, V]

	mu      sync.Mutex
	pending []retiredNode[K, V]
}

type retiredNode[K any, V any] struct {
	n     *node[K, V]
	epoch uint64
}

func newEpochReclaimer[K any, V any](notify Reclaimer[K, V]) *epochReclaimer[K, V] {
	if notify == nil {
		notify = noopReclaimer[K, V]{}
	}
	r := &epochReclaimer[K, V]{clock: id.NewMonotonicCounter(), notify: notify}
	r.clock.Next() // prime to a nonzero epoch; 0 is the reader sentinel for "inactive"
	r.pool.New = func() any { return new(node[K, V]) }
	return r
}

// enter brackets a single Queue operation, returning the slot to pass to exit.
func (r *epochReclaimer[K, V]) enter() uint32 {
	slot := uint32(r.next.Add(1) % epochSlots)
	r.readers[slot].Store(r.clock.Load())
	return slot
}

func (r *epochReclaimer[K, V]) exit(slot uint32) {
	r.readers[slot].Store(0)
}

func (r *epochReclaimer[K, V]) minActive() uint64 {
	var min uint64
	for i := range r.readers {
		if e := r.readers[i].Load(); e != 0 && (min == 0 || e < min) {
			min = e
		}
	}
	return min
}

// get draws a zeroed node out of the pool, allocating one if none is free.
// This is the other half of retire/drainLocked's recycling: without a
// caller pulling from the pool, everything drainLocked puts in would just
// sit there unused.
func (r *epochReclaimer[K, V]) get() *node[K, V] {
	return r.pool.Get().(*node[K, V])
}

// retire marks n for eventual recycling and notifies the caller's Reclaimer.
func (r *epochReclaimer[K, V]) retire(n *node[K, V]) {
	e := r.clock.Next()
	r.notify.Retire(n.key, n.loadVal())
	r.mu.Lock()
	r.pending = append(r.pending, retiredNode[K, V]{n: n, epoch: e})
	r.drainLocked()
	r.mu.Unlock()
}

func (r *epochReclaimer[K, V]) drainLocked() {
	min := r.minActive()
	kept := r.pending[:0]
	for _, rn := range r.pending {
		if min == 0 || rn.epoch < min {
			*rn.n = node[K, V]{}
			r.pool.Put(rn.n)
		} else {
			kept = append(kept, rn)
		}
	}
	r.pending = kept
}

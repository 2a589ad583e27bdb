package skl

import "sync/atomic"

// markedRef is the boxed (pointer, mark) pair that realizes a tagged
// pointer in a GC-safe way. The source algorithm steals the low bit of a
// real pointer; Go's garbage collector requires every pointer-typed word to
// be nil or a valid, aligned address at every safepoint, including mid-CAS
// from another goroutine, so that bit is not ours to take. Boxing the pair
// behind one atomic.Pointer and swapping the whole box keeps every write
// GC-safe while the mark and the reference it guards still change as a
// single atomic unit -- the same shape as a lock-free reference wrapper,
// just grounded on Go's own atomics instead of a raw tagged word.
type markedRef[K any, V any] struct {
	ref    *node[K, V]
	marked bool
}

// taggedPtr is one next[i] slot.
type taggedPtr[K any, V any] struct {
	box atomic.Pointer[markedRef[K, V]]
}

// store is a plain write, used only while a node is still unpublished and
// not yet visible to any other goroutine.
func (p *taggedPtr[K, V]) store(ref *node[K, V]) {
	p.box.Store(&markedRef[K, V]{ref: ref})
}

// load returns the referenced node, ignoring the mark.
func (p *taggedPtr[K, V]) load() *node[K, V] {
	return p.box.Load().ref
}

// loadMarked returns the referenced node together with its mark, read as
// one atomic unit so the two can never tear.
func (p *taggedPtr[K, V]) loadMarked() (*node[K, V], bool) {
	m := p.box.Load()
	return m.ref, m.marked
}

func (p *taggedPtr[K, V]) isMarked() bool {
	return p.box.Load().marked
}

// compareAndSwap swings the slot from (oldRef, oldMarked) to
// (newRef, newMarked) iff it still holds exactly that pair.
func (p *taggedPtr[K, V]) compareAndSwap(oldRef *node[K, V], oldMarked bool, newRef *node[K, V], newMarked bool) bool {
	old := p.box.Load()
	if old.ref != oldRef || old.marked != oldMarked {
		return false
	}
	return p.box.CompareAndSwap(old, &markedRef[K, V]{ref: newRef, marked: newMarked})
}

// fetchOrMark atomically sets the mark bit if it is unset, and reports the
// pre-mark state of the slot. It emulates the source algorithm's hardware
// fetch-or on a tagged word with a CAS retry loop, since no such primitive
// exists for a boxed value; every other taggedPtr operation is a single CAS.
func (p *taggedPtr[K, V]) fetchOrMark() (ref *node[K, V], wasMarked bool) {
	bo := newBackoff()
	for {
		old := p.box.Load()
		if old.marked {
			return old.ref, true
		}
		marked := &markedRef[K, V]{ref: old.ref, marked: true}
		if p.box.CompareAndSwap(old, marked) {
			return old.ref, false
		}
		bo.spin()
	}
}

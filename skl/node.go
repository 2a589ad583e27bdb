package skl

import "sync/atomic"

// NumLevels bounds the height of any node's index tower. Levels above a
// node's own height are never read; they stay at their zero value.
const NumLevels = 32

// node is a single skiplist element. key is immutable for the node's
// lifetime; val, the index tower, and inserting are all swapped atomically
// so that a concurrent reader never observes a half-written node.
type node[K any, V any] struct {
	key       K
	val       atomic.Pointer[V]
	level     int32
	inserting atomic.Bool
	next      [NumLevels]taggedPtr[K, V]
}

func (n *node[K, V]) loadVal() V {
	return *n.val.Load()
}

func (n *node[K, V]) storeVal(v V) {
	n.val.Store(&v)
}

// newNode builds a data node with level forward pointers, all initially
// aimed at succ -- the splicer overwrites next[i] with the real successor
// just before publishing it via CAS (§5.2).
func newNode[K any, V any](key K, val V, level int32, succ *node[K, V]) *node[K, V] {
	return initNode(&node[K, V]{}, key, val, level, succ)
}

// initNode populates n -- freshly allocated or drawn back out of the
// reclaimer's pool -- as a data node, and returns it. Splitting this out of
// newNode is what lets Insert reuse a retired node's backing memory instead
// of always allocating.
func initNode[K any, V any](n *node[K, V], key K, val V, level int32, succ *node[K, V]) *node[K, V] {
	n.key = key
	n.level = level
	n.storeVal(val)
	n.inserting.Store(true)
	for i := int32(0); i < level; i++ {
		n.next[i].store(succ)
	}
	return n
}

// newSentinel builds a head or tail marker. Its next slots are populated by
// the caller (head points every level at tail; tail's are never read, since
// every traversal checks node identity against tail before following next).
func newSentinel[K any, V any]() *node[K, V] {
	n := &node[K, V]{level: NumLevels}
	var zero V
	n.storeVal(zero)
	return n
}

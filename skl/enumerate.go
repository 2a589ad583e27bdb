package skl

// ToArray returns a point-in-time snapshot of every live key/value pair,
// in ascending key order. A node still being inserted is excluded, and so
// is a node reached through a marked edge: DeleteMin marks the predecessor's
// next[0] (the edge into the victim), not the victim's own outgoing edge, so
// liveness has to be decided on the edge just followed, not on x's own.
func (q *Queue[K, V]) ToArray() []Pair[K, V] {
	slot := q.reclaim.enter()
	defer q.reclaim.exit(slot)

	out := make([]Pair[K, V], 0, q.len.Load())
	pred := q.head
	for {
		x, marked := pred.next[0].loadMarked()
		if x == q.tail {
			return out
		}
		if !marked && !x.inserting.Load() {
			out = append(out, Pair[K, V]{Key: x.key, Val: x.loadVal()})
		}
		pred = x
	}
}

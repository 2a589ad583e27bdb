package skl

import "context"

// DeleteMin removes and returns the smallest key in the queue. ok is
// false iff the queue was empty. Physical unlinking of a deleted run past
// the head is deferred and batched: it only runs once the scan has walked
// past at least maxOffset already-deleted nodes since the last swing.
func (q *Queue[K, V]) DeleteMin() (k K, v V, ok bool) {
	slot := q.reclaim.enter()
	defer q.reclaim.exit(slot)

	x := q.head
	var offset int64
	var newHead *node[K, V]
	obsHead, obsHeadMarked := q.head.next[0].loadMarked()

	for {
		nxtRef, nxtMarked := x.next[0].loadMarked()
		if nxtRef == q.tail {
			var zeroK K
			var zeroV V
			return zeroK, zeroV, false
		}
		offset++
		if newHead == nil && x.inserting.Load() {
			newHead = x
		}
		if nxtMarked {
			x = nxtRef
			continue
		}
		preRef, wasMarked := x.next[0].fetchOrMark()
		x = preRef
		if wasMarked {
			continue
		}
		break
	}

	k, v = x.key, x.loadVal()
	q.len.Add(-1)

	if offset > q.maxOffset {
		if curHead := q.head.next[0].load(); curHead == obsHead {
			if newHead == nil {
				newHead = x
			}
			if q.head.next[0].compareAndSwap(obsHead, obsHeadMarked, newHead, true) {
				q.restructure()
				if q.metrics != nil {
					q.metrics.IncRestructures(context.Background())
				}
				q.reclaimRange(obsHead, newHead)
			}
		}
	}

	return k, v, true
}

// reclaimRange retires every node from obsHead up to, but excluding,
// newHead -- the run that was just physically cut out of the level-0
// chain by the head swing.
func (q *Queue[K, V]) reclaimRange(obsHead, newHead *node[K, V]) {
	var n int64
	for cur := obsHead; cur != newHead && cur != q.tail; {
		next := cur.next[0].load()
		q.reclaim.retire(cur)
		n++
		cur = next
	}
	if n == 0 {
		return
	}
	if q.metrics != nil {
		q.metrics.IncRetired(context.Background(), n)
	}
	if q.logger != nil {
		q.logger.Debug("head advanced")
	}
}

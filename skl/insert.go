package skl

// Insert adds k with value v, or, if k is already present, overwrites its
// value in place. It never blocks: the level-0 splice retries on
// contention rather than taking a lock.
func (q *Queue[K, V]) Insert(k K, v V) {
	slot := q.reclaim.enter()
	defer q.reclaim.exit(slot)

	level := q.levelGen(q.len.Load())
	aux := q.getAux()
	defer q.putAux(aux)

	bo := newBackoff()
	for {
		del := q.locatePreds(k, aux)
		pred0 := aux.preds[0]
		succ0 := aux.succs[0]

		if succ0 != q.tail && q.cmp(succ0.key, k) == 0 {
			ref, marked := pred0.next[0].loadMarked()
			if !marked && ref == succ0 {
				succ0.storeVal(v)
				return
			}
			bo.spin()
			continue
		}

		n := initNode(q.reclaim.get(), k, v, level, succ0)
		if !pred0.next[0].compareAndSwap(succ0, false, n, false) {
			bo.spin()
			continue
		}
		q.len.Add(1)
		q.spliceHigherLevels(n, level, del, aux)
		n.inserting.Store(false)
		return
	}
}

// spliceHigherLevels links n into levels [1, level) after its level-0
// splice has already succeeded.
func (q *Queue[K, V]) spliceHigherLevels(n *node[K, V], level int32, del *node[K, V], aux *auxTraversal[K, V]) {
	for l := int32(1); l < level; {
		succ := aux.succs[l]
		if n.next[0].isMarked() || (succ != q.tail && succ.next[0].isMarked()) || (del != nil && del == succ) {
			return
		}
		pred := aux.preds[l]
		n.next[l].store(succ)
		if pred.next[l].compareAndSwap(succ, false, n, false) {
			l++
			continue
		}
		del = q.locatePreds(n.key, aux)
		if aux.succs[0] != n {
			return
		}
	}
}

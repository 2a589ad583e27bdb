package skl

// locatePreds walks down from the top level to level 0, filling
// aux.preds[i]/aux.succs[i] with the predecessor/successor of key k at
// every level. It also reports del: the last node encountered while
// forced to keep walking level 0 past the queue's already-deleted head
// region, in case the caller is splicing a new node and needs to know a
// higher-level successor is itself already gone.
func (q *Queue[K, V]) locatePreds(k K, aux *auxTraversal[K, V]) (del *node[K, V]) {
	pred := q.head
	d := pred.next[0].isMarked()

	for l := int32(NumLevels - 1); l >= 0; l-- {
		cur := pred.next[l].load()
		for cur != q.tail {
			curDeleted := cur.next[0].isMarked()
			if q.cmp(cur.key, k) < 0 || curDeleted || (l == 0 && d) {
				if l == 0 && d && curDeleted {
					del = cur
				}
				pred = cur
				d = pred.next[0].isMarked()
				cur = pred.next[l].load()
				continue
			}
			break
		}
		aux.preds[l] = pred
		aux.succs[l] = cur
	}
	return del
}

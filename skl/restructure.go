package skl

// restructure advances head.next[i] past any run of nodes already
// logically deleted at level 0, for every level above 0. Level 0 itself is
// never touched here: it is only ever advanced by the deleter's own CAS in
// DeleteMin, and reading it again would race with concurrent deletions
// with no benefit.
func (q *Queue[K, V]) restructure() {
	bo := newBackoff()
	for l := int32(NumLevels - 1); l >= 1; {
		h := q.head.next[l].load()
		// Full fence between reading head.next[l] and pred.next[l]: an
		// atomic.Pointer load already gives sequential consistency with
		// other atomic accesses to the same location, but the two loads
		// below target different locations, so a bare pair of loads gives
		// no ordering guarantee between them on its own. Bumping a shared
		// atomic word between the reads forces the second read to observe
		// everything ordered before the bump, the idiomatic Go substitute
		// for the source algorithm's explicit CMB.
		q.fence.Add(1)
		pred := q.head
		cur := pred.next[l].load()

		if h == q.tail || !h.next[0].isMarked() {
			l--
			continue
		}

		for cur != q.tail && cur.next[0].isMarked() {
			pred = cur
			cur = pred.next[l].load()
		}

		if q.head.next[l].compareAndSwap(h, false, cur, false) {
			l--
		} else {
			bo.spin()
		}
	}
}

package skl

import (
	"sync"
	"sync/atomic"

	"github.com/benz9527/lfskl/internal/metrics"
	"github.com/benz9527/lfskl/internal/xlog"
	"github.com/benz9527/lfskl/lib/infra"
)

// Pair is a single key/value snapshot returned by ToArray.
type Pair[K any, V any] struct {
	Key K
	Val V
}

// Queue is a lock-free concurrent priority queue keyed by K: Insert
// overwrites the value on a duplicate key, DeleteMin removes and returns
// the smallest key. It is a skiplist with batched logical deletion at
// level 0 and lazy, amortized head advancement past runs of deleted nodes.
type Queue[K any, V any] struct {
	head *node[K, V]
	tail *node[K, V]

	cmp       infra.Comparator[K]
	levelGen  LevelGen
	maxOffset int64

	len     atomic.Int64
	fence   atomic.Int32
	auxPool sync.Pool

	reclaim *epochReclaimer[K, V]
	logger  *xlog.Logger
	metrics *metrics.Instruments
}

// auxTraversal holds the preds/succs arrays filled in by locatePreds,
// pooled per queue to avoid an allocation on every Insert call --
// the same role the teacher's xConcSklAux/xConcSklPool pair serves.
type auxTraversal[K any, V any] struct {
	preds [NumLevels]*node[K, V]
	succs [NumLevels]*node[K, V]
}

func newQueue[K any, V any](cmp infra.Comparator[K], maxOffset int64, opts ...Option[K, V]) (*Queue[K, V], error) {
	if maxOffset < 0 {
		return nil, ErrInvalidMaxOffset
	}

	cfg := &queueConfig[K, V]{
		levelGen: NewDynamicLevelGen(),
		logger:   xlog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tail := newSentinel[K, V]()
	head := newSentinel[K, V]()
	for i := int32(0); i < NumLevels; i++ {
		head.next[i].store(tail)
	}

	q := &Queue[K, V]{
		head:      head,
		tail:      tail,
		cmp:       cmp,
		maxOffset: maxOffset,
		levelGen:  cfg.levelGen,
		logger:    cfg.logger,
		reclaim:   newEpochReclaimer[K, V](cfg.reclaimNotify),
	}
	q.auxPool.New = func() any { return new(auxTraversal[K, V]) }
	if cfg.meterName != "" {
		q.metrics = metrics.New(cfg.meterName, q.Len)
	}

	return q, nil
}

// New builds a Queue over one of Go's built-in ordered kinds. It panics on
// a negative maxOffset; use NewSafe for a caller-recoverable error.
func New[K infra.Ordered, V any](maxOffset int64, opts ...Option[K, V]) *Queue[K, V] {
	q, err := newQueue[K, V](infra.OrderedComparator[K](), maxOffset, opts...)
	if err != nil {
		panic(err)
	}
	return q
}

// NewSafe is New without the panic.
func NewSafe[K infra.Ordered, V any](maxOffset int64, opts ...Option[K, V]) (*Queue[K, V], error) {
	return newQueue[K, V](infra.OrderedComparator[K](), maxOffset, opts...)
}

// NewWithComparator builds a Queue over any key type given an explicit
// total order -- the generalization to "any orderable type K" beyond Go's
// built-in ordered kinds.
func NewWithComparator[K any, V any](cmp infra.Comparator[K], maxOffset int64, opts ...Option[K, V]) (*Queue[K, V], error) {
	return newQueue[K, V](cmp, maxOffset, opts...)
}

// Len returns the queue's current element count. It is a fast, eventually
// consistent snapshot: a concurrent Insert or DeleteMin may land before or
// after the read completes.
func (q *Queue[K, V]) Len() int64 {
	return q.len.Load()
}

func (q *Queue[K, V]) getAux() *auxTraversal[K, V] {
	return q.auxPool.Get().(*auxTraversal[K, V])
}

func (q *Queue[K, V]) putAux(aux *auxTraversal[K, V]) {
	*aux = auxTraversal[K, V]{}
	q.auxPool.Put(aux)
}

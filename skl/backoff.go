package skl

import (
	"runtime"

	"github.com/benz9527/lfskl/lib/infra"
)

// backoff is the exponential proc-yield-then-Gosched spin used by every CAS
// retry loop below, ported from the teacher's spinMutex.lock backoff: yield
// a growing number of processor cycles while the retry count is small, then
// fall back to cooperative scheduling once it isn't worth spinning anymore.
type backoff struct {
	n uint8
}

func newBackoff() backoff {
	return backoff{n: 1}
}

func (b *backoff) spin() {
	if b.n <= 32 {
		for i := uint8(0); i < b.n; i++ {
			infra.ProcYield(20)
		}
		b.n <<= 1
		return
	}
	runtime.Gosched()
}

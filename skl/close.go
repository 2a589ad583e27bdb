package skl

import "go.uber.org/multierr"

// Close releases the queue's ambient resources -- currently just its
// logger's buffered sink. Safe to call once at shutdown. The queue itself
// remains usable afterward: there is no other resource to tear down.
// Errors from every released resource are aggregated, in the teacher's
// own multierr.Append idiom, so a future second resource (e.g. a
// caller-owned metrics exporter) can be folded in without changing the
// signature.
func (q *Queue[K, V]) Close() error {
	var err error
	if q.logger != nil {
		err = multierr.Append(err, q.logger.Sync())
	}
	return err
}

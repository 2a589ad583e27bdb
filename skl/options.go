package skl

import "github.com/benz9527/lfskl/internal/xlog"

type queueConfig[K any, V any] struct {
	levelGen      LevelGen
	reclaimNotify Reclaimer[K, V]
	logger        *xlog.Logger
	meterName     string
}

// Option configures a Queue at construction time, in the teacher's
// functional-options idiom (XSklOption in x_skl.go).
type Option[K any, V any] func(*queueConfig[K, V])

// WithLevelGen overrides the default dynamic geometric level generator.
func WithLevelGen[K any, V any](gen LevelGen) Option[K, V] {
	return func(c *queueConfig[K, V]) { c.levelGen = gen }
}

// WithReclaimer registers a notification hook called once per node after
// it is physically unlinked from the structure.
func WithReclaimer[K any, V any](r Reclaimer[K, V]) Option[K, V] {
	return func(c *queueConfig[K, V]) { c.reclaimNotify = r }
}

// WithLogger attaches a debug logger. Only restructure/retire events are
// logged, never the Insert/DeleteMin hot path itself.
func WithLogger[K any, V any](l *xlog.Logger) Option[K, V] {
	return func(c *queueConfig[K, V]) { c.logger = l }
}

// WithMeterName enables OpenTelemetry instrumentation under the given
// meter name. Without it, the queue reports no metrics.
func WithMeterName[K any, V any](name string) Option[K, V] {
	return func(c *queueConfig[K, V]) { c.meterName = name }
}

package metrics

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Instruments is the queue's OpenTelemetry instrumentation point, created
// lazily against whatever global MeterProvider is installed -- the
// teacher's appStats pattern (observability/stats.go), repurposed from
// goroutine/process gauges to this queue's own three counters.
type Instruments struct {
	lenFn        func() int64
	len          metric.Int64ObservableUpDownCounter
	restructures metric.Int64Counter
	retired      metric.Int64Counter
}

// New builds an Instruments bound to lenFn, under the given meter name.
func New(name string, lenFn func() int64) *Instruments {
	m := &Instruments{lenFn: lenFn}
	meter := otel.Meter(name)

	m.len = lo.Must(meter.Int64ObservableUpDownCounter(
		"skl.queue.len",
		metric.WithDescription("current element count"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(m.lenFn())
			return nil
		}),
	))
	m.restructures = lo.Must(meter.Int64Counter(
		"skl.queue.restructures",
		metric.WithDescription("head-advance (restructure) passes"),
	))
	m.retired = lo.Must(meter.Int64Counter(
		"skl.queue.retired",
		metric.WithDescription("nodes retired after a successful head swing"),
	))
	return m
}

func (m *Instruments) IncRestructures(ctx context.Context) {
	if m == nil {
		return
	}
	m.restructures.Add(ctx, 1)
}

func (m *Instruments) IncRetired(ctx context.Context, n int64) {
	if m == nil || n == 0 {
		return
	}
	m.retired.Add(ctx, n)
}

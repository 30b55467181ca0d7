package cascade

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "lingo-services-engagement.cascade"

type metrics struct {
	sweepCounter metric.Int64Counter
	lagHistogram metric.Int64Histogram
}

func newMetrics() *metrics {
	m := otel.GetMeterProvider().Meter(meterName)
	sweepCounter, _ := m.Int64Counter("media_cascade_sweep_total",
		metric.WithDescription("Number of cascade sweeps grouped by result"))
	lagHistogram, _ := m.Int64Histogram("media_cascade_event_lag_ms",
		metric.WithDescription("Delay between video deletion and the completed sweep"))
	return &metrics{sweepCounter: sweepCounter, lagHistogram: lagHistogram}
}

func (m *metrics) recordSuccess(ctx context.Context, occurred, now time.Time) {
	if m == nil || m.sweepCounter == nil {
		return
	}
	m.sweepCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "success")))
	if m.lagHistogram != nil && !occurred.IsZero() && occurred.Before(now) {
		m.lagHistogram.Record(ctx, now.Sub(occurred).Milliseconds())
	}
}

func (m *metrics) recordFailure(ctx context.Context) {
	if m == nil || m.sweepCounter == nil {
		return
	}
	m.sweepCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "failure")))
}

package services

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

const (
	likeToggleMetricName   = "media_like_toggle_total"
	videoViewMetricName    = "media_video_view_total"
	eventEnqueueMetricName = "media_outbox_enqueue_total"
	eventLagMetricName     = "media_outbox_enqueue_lag_ms"
	compensationMetricName = "media_compensation_failures_total"
)

var (
	attrKind      = attribute.Key("kind")
	attrResult    = attribute.Key("result")
	attrEventType = attribute.Key("event_type")
	attrStep      = attribute.Key("step")
)

var (
	engagementMetricsOnce sync.Once
	likeToggleCounter     metric.Int64Counter
	videoViewCounter      metric.Int64Counter
	eventEnqueueCounter   metric.Int64Counter
	eventLagHistogram     metric.Float64Histogram
	compensationCounter   metric.Int64Counter
)

// initEngagementMetrics 惰性注册服务层指标；任一 instrument 创建失败时该指标静默关闭。
func initEngagementMetrics() {
	engagementMetricsOnce.Do(func() {
		provider := otel.GetMeterProvider()
		if provider == nil {
			provider = noopmetric.NewMeterProvider()
		}
		meter := provider.Meter("lingo-services-engagement.services")

		var err error
		if likeToggleCounter, err = meter.Int64Counter(likeToggleMetricName,
			metric.WithDescription("Number of like toggles grouped by target kind and resulting state")); err != nil {
			likeToggleCounter = nil
		}
		if videoViewCounter, err = meter.Int64Counter(videoViewMetricName,
			metric.WithDescription("Number of successful video detail reads that incremented views")); err != nil {
			videoViewCounter = nil
		}
		if eventEnqueueCounter, err = meter.Int64Counter(eventEnqueueMetricName,
			metric.WithDescription("Number of video events written to the outbox, grouped by result")); err != nil {
			eventEnqueueCounter = nil
		}
		if eventLagHistogram, err = meter.Float64Histogram(eventLagMetricName,
			metric.WithDescription("Lag between event occurrence time and outbox write"),
			metric.WithUnit("ms")); err != nil {
			eventLagHistogram = nil
		}
		if compensationCounter, err = meter.Int64Counter(compensationMetricName,
			metric.WithDescription("Number of undo steps that failed after a multi-step write aborted")); err != nil {
			compensationCounter = nil
		}
	})
}

func recordLikeToggle(ctx context.Context, kind string, liked bool) {
	if likeToggleCounter == nil {
		return
	}
	result := "unliked"
	if liked {
		result = "liked"
	}
	likeToggleCounter.Add(ctx, 1, metric.WithAttributes(attrKind.String(kind), attrResult.String(result)))
}

func recordVideoView(ctx context.Context) {
	if videoViewCounter == nil {
		return
	}
	videoViewCounter.Add(ctx, 1)
}

func recordEventEnqueue(ctx context.Context, eventType string, occurredAt time.Time, err error) {
	if eventEnqueueCounter == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	eventEnqueueCounter.Add(ctx, 1, metric.WithAttributes(attrEventType.String(eventType), attrResult.String(result)))
	if err != nil || occurredAt.IsZero() || eventLagHistogram == nil {
		return
	}
	lag := max(time.Since(occurredAt).Milliseconds(), 0)
	eventLagHistogram.Record(ctx, float64(lag), metric.WithAttributes(attrEventType.String(eventType)))
}

func recordCompensationFailure(ctx context.Context, step string) {
	if compensationCounter == nil {
		return
	}
	compensationCounter.Add(ctx, 1, metric.WithAttributes(attrStep.String(step)))
}

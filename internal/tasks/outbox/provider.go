// Package outbox 将 media 的 Outbox 仓储与 Pub/Sub 发布器组装为可运行的发布任务。
// HTTP 进程与独立的 outbox 任务进程共用此装配逻辑。
package outbox

import (
	"context"

	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"

	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

const meterName = "lingo-services-engagement.outbox"

// Runner 在 lingo-utils 发布器外补充启动时的积压报告。
type Runner struct {
	delegate *outboxpublisher.Runner
	repo     *repositories.OutboxRepository
	topic    string
	log      *log.Helper
}

// Run 启动发布循环，直到 ctx 取消。
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || r.delegate == nil {
		return nil
	}
	if pending, err := r.repo.CountPending(ctx); err != nil {
		r.log.WithContext(ctx).Warnf("outbox publisher: count pending failed: %v", err)
	} else {
		r.log.WithContext(ctx).Infof("outbox publisher starting: topic=%s pending=%d", r.topic, pending)
	}
	return r.delegate.Run(ctx)
}

// ProvideRunner 装配视频事件发布器；未配置 topic 时返回 nil，调用方据此跳过任务。
func ProvideRunner(
	repo *repositories.OutboxRepository,
	publisher gcpubsub.Publisher,
	pubCfg gcpubsub.Config,
	cfg outboxcfg.Config,
	logger log.Logger,
) *Runner {
	if repo == nil || publisher == nil || logger == nil {
		return nil
	}
	helper := log.NewHelper(logger)
	if pubCfg.TopicID == "" {
		helper.Warn("outbox publisher disabled: messaging.events.topic_id not configured")
		return nil
	}

	pub := cfg.Normalize().Publisher
	if enabled(pub.LoggingEnabled) {
		helper.Infof("init outbox publisher: topic=%s batch_size=%d workers=%d tick=%s max_attempts=%d",
			pubCfg.TopicID, pub.BatchSize, pub.Workers, pub.TickInterval, pub.MaxAttempts)
	}

	delegate, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    pub,
		Logger:    logger,
		Meter:     publisherMeter(enabled(pub.MetricsEnabled)),
	})
	if err != nil {
		helper.Errorw("msg", "init outbox publisher failed", "topic", pubCfg.TopicID, "error", err)
		return nil
	}
	return &Runner{delegate: delegate, repo: repo, topic: pubCfg.TopicID, log: helper}
}

func publisherMeter(metricsEnabled bool) metric.Meter {
	if !metricsEnabled {
		return noopmetric.NewMeterProvider().Meter(meterName)
	}
	return otel.GetMeterProvider().Meter(meterName)
}

// enabled 把未设置的开关视为开启。
func enabled(flag *bool) bool {
	return flag == nil || *flag
}

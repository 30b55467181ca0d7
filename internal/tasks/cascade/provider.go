package cascade

import (
	"github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配清扫 Runner；未配置 cascade 订阅时返回 nil。
func ProvideRunner(
	svc *services.CascadeService,
	inboxRepo *repositories.InboxRepository,
	tx txmanager.Manager,
	sub configloader.CascadeSubscriber,
	outboxCfg outboxcfg.Config,
	logger log.Logger,
) *Runner {
	realSub := gcpubsub.Subscriber(sub)
	if svc == nil || inboxRepo == nil || realSub == nil || logger == nil {
		return nil
	}
	runner, err := NewRunner(RunnerParams{
		Subscriber: realSub,
		InboxRepo:  inboxRepo,
		Sweeper:    svc,
		TxManager:  tx,
		Logger:     logger,
		Config:     outboxCfg.Inbox,
	})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init cascade runner failed", "error", err)
		return nil
	}
	return runner
}

package cascade

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	"github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/inbox"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
)

// Runner 封装视频删除事件的消费循环（基于 Inbox Runner）。
type Runner struct {
	delegate *inbox.Runner[Event]
	inbox    backlogCounter
	log      *log.Helper
	metrics  *metrics
}

type backlogCounter interface {
	CountUnprocessed(ctx context.Context) (int64, error)
}

// RunnerParams 注入 Runner 所需依赖。
type RunnerParams struct {
	Subscriber gcpubsub.Subscriber
	InboxRepo  *repositories.InboxRepository
	Sweeper    sweeper
	TxManager  txmanager.Manager
	Logger     log.Logger
	Config     config.InboxConfig
}

// NewRunner 构造清扫 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Subscriber == nil {
		return nil, fmt.Errorf("cascade: subscriber is required")
	}
	if params.InboxRepo == nil {
		return nil, fmt.Errorf("cascade: inbox repository is required")
	}
	if params.Sweeper == nil {
		return nil, fmt.Errorf("cascade: sweeper is required")
	}
	if params.TxManager == nil {
		return nil, fmt.Errorf("cascade: tx manager is required")
	}

	if params.Logger == nil {
		params.Logger = log.DefaultLogger
	}

	m := newMetrics()
	delegate, err := inbox.NewRunner[Event](inbox.RunnerParams[Event]{
		Store:      params.InboxRepo.Shared(),
		Subscriber: params.Subscriber,
		TxManager:  params.TxManager,
		Decoder:    newEventDecoder(),
		Handler:    NewEventHandler(params.Sweeper, params.Logger, m),
		Config:     params.Config,
		Logger:     params.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Runner{
		delegate: delegate,
		inbox:    params.InboxRepo,
		log:      log.NewHelper(params.Logger),
		metrics:  m,
	}, nil
}

// Run 启动消费循环，直到 ctx 取消。启动时记录上次遗留的未处理事件数。
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || r.delegate == nil {
		return nil
	}
	if r.inbox != nil {
		if pending, err := r.inbox.CountUnprocessed(ctx); err != nil {
			r.log.WithContext(ctx).Warnf("cascade sweeper: count backlog failed: %v", err)
		} else {
			r.log.WithContext(ctx).Infof("cascade sweeper starting: unprocessed=%d", pending)
		}
	}
	return r.delegate.Run(ctx)
}

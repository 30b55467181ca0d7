package cascade

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// sweeper 是 Handler 依赖的级联清理能力。
type sweeper interface {
	Sweep(ctx context.Context, sess txmanager.Session, target services.CascadeTarget) services.CascadeReport
}

var _ sweeper = (*services.CascadeService)(nil)

// EventHandler 对每条删除事件执行一次幂等清扫。
type EventHandler struct {
	sweeper sweeper
	log     *log.Helper
	metrics *metrics
}

// NewEventHandler 构造删除事件处理器。
func NewEventHandler(s sweeper, logger log.Logger, m *metrics) *EventHandler {
	return &EventHandler{sweeper: s, log: log.NewHelper(logger), metrics: m}
}

// Handle 在 Inbox 事务内执行清扫。任一步骤失败都返回错误，事务回滚后消息会被重新投递。
func (h *EventHandler) Handle(ctx context.Context, sess txmanager.Session, evt *Event, _ *store.InboxEvent) error {
	if evt == nil {
		return fmt.Errorf("cascade: nil event")
	}
	if evt.Payload.VideoID == uuid.Nil {
		return errors.BadRequest("invalid-video-id", "video_id is required")
	}

	report := h.sweeper.Sweep(ctx, sess, services.CascadeTarget{
		VideoID:            evt.Payload.VideoID,
		VideoStorageID:     evt.Payload.VideoStorageID,
		ThumbnailStorageID: evt.Payload.ThumbnailStorageID,
	})
	if report.Failed() {
		h.metrics.recordFailure(ctx)
		return fmt.Errorf("cascade: sweep video %s: %w", evt.Payload.VideoID, stderrors.Join(report.Errors...))
	}

	occurred := evt.OccurredAt
	if occurred.IsZero() {
		occurred = evt.Payload.DeletedAt
	}
	h.metrics.recordSuccess(ctx, occurred, time.Now())
	h.log.WithContext(ctx).Debugf("cascade sweep done: video=%s likes=%d comments=%d playlists=%d",
		evt.Payload.VideoID, report.LikesRemoved+report.CommentLikesRemoved, report.CommentsRemoved, report.PlaylistsTouched)
	return nil
}

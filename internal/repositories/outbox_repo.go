package repositories

import (
	"context"
	"fmt"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-engagement/internal/models/outbox_events"

	outboxpkg "github.com/bionicotaku/lingo-utils/outbox"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxMessage 描述需要写入 outbox_events 的事件数据。
type OutboxMessage = store.Message

// OutboxEvent 表示从数据库读取的待发布事件。
type OutboxEvent = store.Event

// OutboxRepository 封装 lingo-utils 共享仓储，并负责把领域事件编码为 outbox 行。
type OutboxRepository struct {
	delegate *store.Repository
	log      *log.Helper
	schema   string
}

// NewOutboxRepository 构建 Outbox 仓储，schema 取自 messaging 配置（默认 media）。
func NewOutboxRepository(db *pgxpool.Pool, logger log.Logger, cfg outboxcfg.Config) *OutboxRepository {
	helper := log.NewHelper(logger)
	storeRepo, err := outboxpkg.NewRepository(db, logger, outboxpkg.RepositoryOptions{Schema: cfg.Schema})
	if err != nil {
		helper.Errorw("msg", "init outbox repository failed", "schema", cfg.Schema, "error", err)
		return &OutboxRepository{delegate: store.NewRepository(db, logger), log: helper, schema: cfg.Schema}
	}
	return &OutboxRepository{delegate: storeRepo, log: helper, schema: cfg.Schema}
}

// Enqueue 在事务内插入 Outbox 事件。
func (r *OutboxRepository) Enqueue(ctx context.Context, sess txmanager.Session, msg OutboxMessage) error {
	return r.delegate.Enqueue(ctx, sess, msg)
}

// EnqueueEvent 将领域事件编码为 Struct 载荷并与业务写入同事务落库。
// attributes 携带 trace_id，便于消费端串联链路。
func (r *OutboxRepository) EnqueueEvent(ctx context.Context, sess txmanager.Session, event *outboxevents.DomainEvent) error {
	if event == nil {
		return fmt.Errorf("enqueue event: nil event")
	}
	payload, err := outboxevents.Marshal(event)
	if err != nil {
		return fmt.Errorf("enqueue event: %w", err)
	}
	availableAt := event.OccurredAt
	if availableAt.IsZero() {
		availableAt = time.Now().UTC()
	}
	msg := OutboxMessage{
		EventID:       event.EventID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.Kind.String(),
		Payload:       payload,
		Headers:       outboxevents.BuildAttributes(event, outboxevents.SchemaVersionV1, outboxevents.TraceIDFromContext(ctx)),
		AvailableAt:   availableAt,
	}
	if err := r.delegate.Enqueue(ctx, sess, msg); err != nil {
		r.log.WithContext(ctx).Errorf("enqueue outbox failed: event=%s type=%s err=%v", event.EventID, msg.EventType, err)
		return fmt.Errorf("enqueue outbox: %w", err)
	}
	return nil
}

// ClaimPending 返回一批待发布的 Outbox 事件。
func (r *OutboxRepository) ClaimPending(ctx context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]OutboxEvent, error) {
	return r.delegate.ClaimPending(ctx, availableBefore, staleBefore, limit, lockToken)
}

// MarkPublished 更新事件状态为已发布。
func (r *OutboxRepository) MarkPublished(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, publishedAt time.Time) error {
	return r.delegate.MarkPublished(ctx, sess, eventID, lockToken, publishedAt)
}

// Reschedule 将事件重新安排在未来时间发布，并记录错误信息。
func (r *OutboxRepository) Reschedule(ctx context.Context, sess txmanager.Session, eventID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error {
	return r.delegate.Reschedule(ctx, sess, eventID, lockToken, nextAvailable, lastErr)
}

// CountPending 返回当前未发布的 Outbox 事件数量。
func (r *OutboxRepository) CountPending(ctx context.Context) (int64, error) {
	return r.delegate.CountPending(ctx)
}

// Shared 返回底层通用实现，供发布任务使用。
func (r *OutboxRepository) Shared() *store.Repository {
	return r.delegate
}

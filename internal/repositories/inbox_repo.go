package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-utils/outbox/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InboxRepository 为级联清扫任务提供按 event_id 去重的收件箱。
// 与 Outbox 共用同一个 lingo-utils 存储实例，因而也共用 schema。
type InboxRepository struct {
	shared *store.Repository
	db     *pgxpool.Pool
	schema string
}

// NewInboxRepository 基于 Outbox 仓储构建 Inbox 仓储。
func NewInboxRepository(db *pgxpool.Pool, outbox *OutboxRepository) *InboxRepository {
	repo := &InboxRepository{db: db, schema: defaultInboxSchema}
	if outbox != nil {
		repo.shared = outbox.Shared()
		if outbox.schema != "" {
			repo.schema = outbox.schema
		}
	}
	return repo
}

const defaultInboxSchema = "media"

// Shared 暴露底层共享仓储，供 inbox runner 记录与标记事件。
func (r *InboxRepository) Shared() *store.Repository {
	return r.shared
}

// CountUnprocessed 返回已记录但尚未成功处理的事件数，用于清扫任务的积压观测。
func (r *InboxRepository) CountUnprocessed(ctx context.Context) (int64, error) {
	if r.db == nil {
		return 0, fmt.Errorf("inbox repository: pool not configured")
	}
	query := fmt.Sprintf(`SELECT count(*) FROM %s.inbox_events WHERE processed_at IS NULL`, pgx.Identifier{r.schema}.Sanitize())
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unprocessed inbox events: %w", err)
	}
	return n, nil
}

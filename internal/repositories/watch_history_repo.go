package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WatchHistoryRepository 维护用户观看历史集合。
type WatchHistoryRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewWatchHistoryRepository 构造仓储实例。
func NewWatchHistoryRepository(db *pgxpool.Pool, logger log.Logger) *WatchHistoryRepository {
	return &WatchHistoryRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Record 幂等写入观看记录，重复观看只刷新 last_watched_at。
func (r *WatchHistoryRepository) Record(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.UpsertWatchHistory(ctx, mediadb.UpsertWatchHistoryParams{UserID: userID, VideoID: videoID}); err != nil {
		r.log.WithContext(ctx).Errorf("record watch history failed: user=%s video=%s err=%v", userID, videoID, err)
		return fmt.Errorf("record watch history: %w", err)
	}
	return nil
}

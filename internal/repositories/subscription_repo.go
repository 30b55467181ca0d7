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

// SubscriptionRepository 只读访问订阅关系，写入由订阅服务负责。
type SubscriptionRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewSubscriptionRepository 构造仓储实例。
func NewSubscriptionRepository(db *pgxpool.Pool, logger log.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// IsSubscribed 判断 subscriber 是否订阅了 channel。
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, sess txmanager.Session, channelID, subscriberID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ok, err := queries.SubscriptionExists(ctx, mediadb.SubscriptionExistsParams{ChannelID: channelID, SubscriberID: subscriberID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("subscription lookup failed: channel=%s subscriber=%s err=%v", channelID, subscriberID, err)
		return false, fmt.Errorf("subscription exists: %w", err)
	}
	return ok, nil
}

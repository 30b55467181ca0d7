package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TweetRepository 提供动态读写。
type TweetRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewTweetRepository 构造仓储实例。
func NewTweetRepository(db *pgxpool.Pool, logger log.Logger) *TweetRepository {
	return &TweetRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Create 插入动态。
func (r *TweetRepository) Create(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID, content string) (*po.Tweet, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreateTweet(ctx, mediadb.CreateTweetParams{OwnerID: ownerID, Content: content})
	if err != nil {
		r.log.WithContext(ctx).Errorf("create tweet failed: owner=%s err=%v", ownerID, err)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("create tweet: %w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("create tweet: %w", err)
	}
	return mappers.TweetFromRow(row), nil
}

// Exists 判断动态是否存在。
func (r *TweetRepository) Exists(ctx context.Context, sess txmanager.Session, tweetID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ok, err := queries.TweetExists(ctx, tweetID)
	if err != nil {
		return false, fmt.Errorf("tweet exists: %w", err)
	}
	return ok, nil
}

// ListByOwner 按创建时间倒序返回用户动态。
func (r *TweetRepository) ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.TweetWithOwner, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListTweetsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	items := make([]*po.TweetWithOwner, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.TweetWithOwnerFromRow(row))
	}
	return items, nil
}

// Update 以 (id, owner) 为条件更新内容；零行命中返回 ErrTweetNotFound。
func (r *TweetRepository) Update(ctx context.Context, sess txmanager.Session, tweetID, ownerID uuid.UUID, content string) (*po.Tweet, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpdateTweet(ctx, mediadb.UpdateTweetParams{ID: tweetID, OwnerID: ownerID, Content: content})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTweetNotFound
		}
		r.log.WithContext(ctx).Errorf("update tweet failed: tweet=%s err=%v", tweetID, err)
		return nil, fmt.Errorf("update tweet: %w", err)
	}
	return mappers.TweetFromRow(row), nil
}

// Delete 以 (id, owner) 为条件删除；零行命中返回 ErrTweetNotFound。
func (r *TweetRepository) Delete(ctx context.Context, sess txmanager.Session, tweetID, ownerID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteTweet(ctx, mediadb.DeleteTweetParams{ID: tweetID, OwnerID: ownerID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete tweet failed: tweet=%s err=%v", tweetID, err)
		return fmt.Errorf("delete tweet: %w", err)
	}
	if affected == 0 {
		return ErrTweetNotFound
	}
	return nil
}

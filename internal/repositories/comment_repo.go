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

// CommentRepository 提供评论读写。
type CommentRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewCommentRepository 构造仓储实例。
func NewCommentRepository(db *pgxpool.Pool, logger log.Logger) *CommentRepository {
	return &CommentRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Create 插入评论。
func (r *CommentRepository) Create(ctx context.Context, sess txmanager.Session, videoID, ownerID uuid.UUID, content string) (*po.Comment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreateComment(ctx, mediadb.CreateCommentParams{VideoID: videoID, OwnerID: ownerID, Content: content})
	if err != nil {
		r.log.WithContext(ctx).Errorf("create comment failed: video=%s owner=%s err=%v", videoID, ownerID, err)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("create comment: %w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return mappers.CommentFromRow(row), nil
}

// Get 查询评论。
func (r *CommentRepository) Get(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (*po.Comment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return mappers.CommentFromRow(row), nil
}

// Exists 判断评论是否存在。
func (r *CommentRepository) Exists(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ok, err := queries.CommentExists(ctx, commentID)
	if err != nil {
		return false, fmt.Errorf("comment exists: %w", err)
	}
	return ok, nil
}

// UpdateContent 以 (id, owner) 为条件更新内容；零行命中返回 ErrCommentNotFound。
func (r *CommentRepository) UpdateContent(ctx context.Context, sess txmanager.Session, commentID, ownerID uuid.UUID, content string) (*po.Comment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpdateCommentContent(ctx, mediadb.UpdateCommentContentParams{ID: commentID, OwnerID: ownerID, Content: content})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		r.log.WithContext(ctx).Errorf("update comment failed: comment=%s err=%v", commentID, err)
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return mappers.CommentFromRow(row), nil
}

// Delete 删除作者本人的评论，返回是否删除了行。
func (r *CommentRepository) Delete(ctx context.Context, sess txmanager.Session, commentID, ownerID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteComment(ctx, mediadb.DeleteCommentParams{ID: commentID, OwnerID: ownerID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete comment failed: comment=%s err=%v", commentID, err)
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return affected > 0, nil
}

// ListByVideo 按创建时间倒序分页返回视频评论及作者信息。
func (r *CommentRepository) ListByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID, limit, offset int32) ([]*po.CommentWithOwner, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListCommentsByVideo(ctx, mediadb.ListCommentsByVideoParams{VideoID: videoID, Limit: limit, Offset: offset})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list comments failed: video=%s err=%v", videoID, err)
		return nil, fmt.Errorf("list comments: %w", err)
	}
	items := make([]*po.CommentWithOwner, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.CommentWithOwnerFromRow(row))
	}
	return items, nil
}

// CountByVideo 返回视频评论数。
func (r *CommentRepository) CountByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	total, err := queries.CountCommentsByVideo(ctx, videoID)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return total, nil
}

// DeleteByVideo 删除视频下全部评论。
func (r *CommentRepository) DeleteByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteCommentsByVideo(ctx, videoID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete comments by video failed: video=%s err=%v", videoID, err)
		return 0, fmt.Errorf("delete comments by video: %w", err)
	}
	return affected, nil
}

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

// LikeRepository 维护多态目标的点赞记录。
type LikeRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewLikeRepository 构造仓储实例。
func NewLikeRepository(db *pgxpool.Pool, logger log.Logger) *LikeRepository {
	return &LikeRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Find 按目标类型查询用户的点赞记录，不存在时返回 ErrLikeNotFound。
func (r *LikeRepository) Find(ctx context.Context, sess txmanager.Session, userID uuid.UUID, target po.LikeTarget) (*po.Like, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	targetID := uuid.NullUUID{UUID: target.ID, Valid: true}

	var (
		row mediadb.MediaLike
		err error
	)
	switch target.Kind {
	case po.LikeTargetVideo:
		row, err = queries.GetLikeByVideo(ctx, mediadb.GetLikeByVideoParams{LikedBy: userID, VideoID: targetID})
	case po.LikeTargetComment:
		row, err = queries.GetLikeByComment(ctx, mediadb.GetLikeByCommentParams{LikedBy: userID, CommentID: targetID})
	case po.LikeTargetTweet:
		row, err = queries.GetLikeByTweet(ctx, mediadb.GetLikeByTweetParams{LikedBy: userID, TweetID: targetID})
	default:
		return nil, fmt.Errorf("find like: %w", po.ErrInvalidLikeTarget)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLikeNotFound
		}
		r.log.WithContext(ctx).Errorf("find like failed: user=%s kind=%s target=%s err=%v", userID, target.Kind, target.ID, err)
		return nil, fmt.Errorf("find like: %w", err)
	}
	return mappers.LikeFromRow(row), nil
}

// Insert 写入点赞记录。写入前校验目标列恰好一个；唯一索引冲突返回 ErrLikeExists。
func (r *LikeRepository) Insert(ctx context.Context, sess txmanager.Session, like *po.Like) (*po.Like, error) {
	if err := like.Validate(); err != nil {
		return nil, fmt.Errorf("insert like: %w", err)
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.InsertLike(ctx, mappers.BuildInsertLikeParams(like))
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, ErrLikeExists
		case pgCheckViolation:
			return nil, fmt.Errorf("insert like: %w", po.ErrInvalidLikeTarget)
		}
		r.log.WithContext(ctx).Errorf("insert like failed: user=%s err=%v", like.LikedBy, err)
		return nil, fmt.Errorf("insert like: %w", err)
	}
	return mappers.LikeFromRow(row), nil
}

// Delete 按主键删除点赞记录，返回是否删除了行。
func (r *LikeRepository) Delete(ctx context.Context, sess txmanager.Session, likeID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteLike(ctx, likeID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete like failed: like=%s err=%v", likeID, err)
		return false, fmt.Errorf("delete like: %w", err)
	}
	return affected > 0, nil
}

// CountByVideo 返回视频的点赞数。
func (r *LikeRepository) CountByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	count, err := queries.CountVideoLikes(ctx, uuid.NullUUID{UUID: videoID, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("count video likes: %w", err)
	}
	return count, nil
}

// DeleteByVideo 删除视频的全部点赞。
func (r *LikeRepository) DeleteByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteLikesByVideo(ctx, uuid.NullUUID{UUID: videoID, Valid: true})
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete likes by video failed: video=%s err=%v", videoID, err)
		return 0, fmt.Errorf("delete likes by video: %w", err)
	}
	return affected, nil
}

// DeleteByComment 删除评论的全部点赞。
func (r *LikeRepository) DeleteByComment(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteLikesByComment(ctx, uuid.NullUUID{UUID: commentID, Valid: true})
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete likes by comment failed: comment=%s err=%v", commentID, err)
		return 0, fmt.Errorf("delete likes by comment: %w", err)
	}
	return affected, nil
}

// DeleteByTweet 删除动态的全部点赞。
func (r *LikeRepository) DeleteByTweet(ctx context.Context, sess txmanager.Session, tweetID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteLikesByTweet(ctx, uuid.NullUUID{UUID: tweetID, Valid: true})
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete likes by tweet failed: tweet=%s err=%v", tweetID, err)
		return 0, fmt.Errorf("delete likes by tweet: %w", err)
	}
	return affected, nil
}

// DeleteForVideoComments 删除视频下所有评论收到的点赞，须在删除评论之前调用。
func (r *LikeRepository) DeleteForVideoComments(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteLikesForVideoComments(ctx, videoID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete comment likes failed: video=%s err=%v", videoID, err)
		return 0, fmt.Errorf("delete likes for video comments: %w", err)
	}
	return affected, nil
}

// ListLikedVideos 返回用户点赞过且可见的视频，按点赞时间倒序。
func (r *LikeRepository) ListLikedVideos(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit, offset int32) ([]*po.LikedVideo, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListLikedVideos(ctx, mediadb.ListLikedVideosParams{
		LikedBy: userID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list liked videos failed: user=%s err=%v", userID, err)
		return nil, fmt.Errorf("list liked videos: %w", err)
	}
	items := make([]*po.LikedVideo, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.LikedVideoFromRow(row))
	}
	return items, nil
}

// CountLikedVideos 返回用户可见点赞视频总数。
func (r *LikeRepository) CountLikedVideos(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	total, err := queries.CountLikedVideos(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count liked videos: %w", err)
	}
	return total, nil
}

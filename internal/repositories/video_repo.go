// Package repositories 实现数据访问层，封装 sqlc 生成的查询方法。
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// 视频列表允许的排序字段。
const (
	VideoSortCreatedAt = "createdAt"
	VideoSortViews     = "views"
	VideoSortDuration  = "duration"
	VideoSortTitle     = "title"
)

// VideoRepository 提供视频相关的持久化访问能力。
type VideoRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewVideoRepository 构造 VideoRepository 实例（供 Wire 注入使用）。
func NewVideoRepository(db *pgxpool.Pool, logger log.Logger) *VideoRepository {
	return &VideoRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// UpdateVideoInput 表示可选更新字段的集合，nil 字段保持原值。
type UpdateVideoInput struct {
	VideoID            uuid.UUID
	OwnerID            uuid.UUID
	Title              *string
	Description        *string
	ThumbnailURL       *string
	ThumbnailStorageID *string
}

// VideoFilter 描述列表过滤条件。
// ViewerID 为 nil 时仅返回已发布视频；非 nil 时额外包含其本人的未发布视频。
type VideoFilter struct {
	Query    *string
	OwnerID  *uuid.UUID
	ViewerID *uuid.UUID
}

// ListVideosInput 描述分页查询参数。
type ListVideosInput struct {
	VideoFilter
	SortBy   string
	SortDesc bool
	Limit    int32
	Offset   int32
}

// Create 插入视频记录。
func (r *VideoRepository) Create(ctx context.Context, sess txmanager.Session, video po.Video) (*po.Video, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreateVideo(ctx, mappers.BuildCreateVideoParams(video))
	if err != nil {
		r.log.WithContext(ctx).Errorf("create video failed: owner=%s err=%v", video.OwnerID, err)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("create video: %w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("create video: %w", err)
	}
	return mappers.VideoFromRow(row), nil
}

// Get 根据 ID 查询视频。
func (r *VideoRepository) Get(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.Video, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("get video: %w", err)
	}
	return mappers.VideoFromRow(row), nil
}

// GetWithOwner 查询视频并联表作者投影。
func (r *VideoRepository) GetWithOwner(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.VideoWithOwner, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetVideoWithOwner(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("get video with owner failed: video=%s err=%v", videoID, err)
		return nil, fmt.Errorf("get video with owner: %w", err)
	}
	return mappers.VideoWithOwnerFromRow(row), nil
}

// Exists 判断视频是否存在。
func (r *VideoRepository) Exists(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ok, err := queries.VideoExists(ctx, videoID)
	if err != nil {
		return false, fmt.Errorf("video exists: %w", err)
	}
	return ok, nil
}

// IncrementViews 原子自增播放数并返回新值。
func (r *VideoRepository) IncrementViews(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	views, err := queries.IncrementVideoViews(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("increment views failed: video=%s err=%v", videoID, err)
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return views, nil
}

// UpdateDetails 以 (id, owner) 为条件更新可选字段；零行命中返回 ErrVideoNotFound。
func (r *VideoRepository) UpdateDetails(ctx context.Context, sess txmanager.Session, input UpdateVideoInput) (*po.Video, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	params := mappers.BuildUpdateVideoParams(input.VideoID, input.OwnerID, input.Title, input.Description, input.ThumbnailURL, input.ThumbnailStorageID)
	row, err := queries.UpdateVideoDetails(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("update video failed: video=%s err=%v", input.VideoID, err)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("update video: %w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("update video: %w", err)
	}
	return mappers.VideoFromRow(row), nil
}

// TogglePublish 原子翻转发布状态并返回新值。
func (r *VideoRepository) TogglePublish(ctx context.Context, sess txmanager.Session, videoID, ownerID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	published, err := queries.ToggleVideoPublish(ctx, mediadb.ToggleVideoPublishParams{ID: videoID, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("toggle publish failed: video=%s err=%v", videoID, err)
		return false, fmt.Errorf("toggle publish: %w", err)
	}
	return published, nil
}

// Delete 删除作者本人的视频并返回被删除的行。
func (r *VideoRepository) Delete(ctx context.Context, sess txmanager.Session, videoID, ownerID uuid.UUID) (*po.Video, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.DeleteVideo(ctx, mediadb.DeleteVideoParams{ID: videoID, OwnerID: ownerID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("delete video failed: video=%s err=%v", videoID, err)
		return nil, fmt.Errorf("delete video: %w", err)
	}
	return mappers.VideoFromRow(row), nil
}

// List 按过滤条件分页返回视频，排序以 id 作为最终决胜键。
func (r *VideoRepository) List(ctx context.Context, sess txmanager.Session, input ListVideosInput) ([]*po.VideoWithOwner, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = VideoSortCreatedAt
	}
	rows, err := queries.ListVideos(ctx, mediadb.ListVideosParams{
		Search:     searchPattern(input.Query),
		OwnerID:    mappers.ToNullUUID(input.OwnerID),
		ViewerID:   mappers.ToNullUUID(input.ViewerID),
		SortBy:     sortBy,
		SortDesc:   input.SortDesc,
		PageLimit:  input.Limit,
		PageOffset: input.Offset,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("list videos failed: err=%v", err)
		return nil, fmt.Errorf("list videos: %w", err)
	}
	items := make([]*po.VideoWithOwner, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.VideoWithOwnerFromListRow(row))
	}
	return items, nil
}

// Count 返回满足过滤条件的视频总数。
func (r *VideoRepository) Count(ctx context.Context, sess txmanager.Session, filter VideoFilter) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	total, err := queries.CountVideos(ctx, mediadb.CountVideosParams{
		Search:   searchPattern(filter.Query),
		OwnerID:  mappers.ToNullUUID(filter.OwnerID),
		ViewerID: mappers.ToNullUUID(filter.ViewerID),
	})
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return total, nil
}

// ListByIDs 返回指定 ID 中对观看者可见的视频。
func (r *VideoRepository) ListByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID, viewerID *uuid.UUID) ([]*po.VideoWithOwner, error) {
	if len(ids) == 0 {
		return []*po.VideoWithOwner{}, nil
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListVideosByIDs(ctx, mediadb.ListVideosByIDsParams{
		Ids:      ids,
		ViewerID: mappers.ToNullUUID(viewerID),
	})
	if err != nil {
		return nil, fmt.Errorf("list videos by ids: %w", err)
	}
	items := make([]*po.VideoWithOwner, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.VideoWithOwnerFromIDsRow(row))
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchPattern 转义 ILIKE 通配符；空白查询视为不过滤。
func searchPattern(query *string) pgtype.Text {
	if query == nil {
		return pgtype.Text{}
	}
	trimmed := strings.TrimSpace(*query)
	if trimmed == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: likeEscaper.Replace(trimmed), Valid: true}
}

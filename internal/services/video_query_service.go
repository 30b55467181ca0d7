package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// 列表排序方向。
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// VideoQueryService 提供视频列表与详情聚合读取。
type VideoQueryService struct {
	videos        VideoRepository
	likes         LikeRepository
	comments      CommentRepository
	subscriptions SubscriptionRepository
	history       WatchHistoryRepository
	log           *log.Helper
}

// NewVideoQueryService 构造 VideoQueryService。
func NewVideoQueryService(
	videos VideoRepository,
	likes LikeRepository,
	comments CommentRepository,
	subscriptions SubscriptionRepository,
	history WatchHistoryRepository,
	logger log.Logger,
) *VideoQueryService {
	initEngagementMetrics()
	return &VideoQueryService{
		videos:        videos,
		likes:         likes,
		comments:      comments,
		subscriptions: subscriptions,
		history:       history,
		log:           log.NewHelper(logger),
	}
}

// ListVideosInput 描述视频列表查询参数。
type ListVideosInput struct {
	Query    string
	OwnerID  *uuid.UUID
	ViewerID *uuid.UUID
	SortBy   string
	SortType string
	Page     int
	PageSize int
}

var allowedVideoSorts = map[string]struct{}{
	repositories.VideoSortCreatedAt: {},
	repositories.VideoSortViews:     {},
	repositories.VideoSortDuration:  {},
	repositories.VideoSortTitle:     {},
}

// ListVideos 按过滤条件分页返回视频。
// 公开列表只含已发布视频；作者查看自己的列表时包含未发布视频。
func (s *VideoQueryService) ListVideos(ctx context.Context, input ListVideosInput) (*vo.Page[*vo.VideoSummary], error) {
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = repositories.VideoSortCreatedAt
	}
	if _, ok := allowedVideoSorts[sortBy]; !ok {
		return nil, invalidArgument("sortBy must be one of createdAt, views, duration, title")
	}
	sortType := strings.ToLower(input.SortType)
	if sortType == "" {
		sortType = SortDesc
	}
	if sortType != SortAsc && sortType != SortDesc {
		return nil, invalidArgument("sortType must be asc or desc")
	}

	filter := repositories.VideoFilter{OwnerID: input.OwnerID}
	if q := strings.TrimSpace(input.Query); q != "" {
		filter.Query = &q
	}
	if input.OwnerID != nil && input.ViewerID != nil && *input.OwnerID == *input.ViewerID {
		viewer := *input.ViewerID
		filter.ViewerID = &viewer
	}
	req := NewPageRequest(input.Page, input.PageSize, DefaultPageSize)

	var total int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.videos.Count(gctx, nil, filter)
		return err
	})
	var summaries []*vo.VideoSummary
	g.Go(func() error {
		rows, err := s.videos.List(gctx, nil, repositories.ListVideosInput{
			VideoFilter: filter,
			SortBy:      sortBy,
			SortDesc:    sortType == SortDesc,
			Limit:       req.Limit(),
			Offset:      req.Offset(),
		})
		if err != nil {
			return err
		}
		summaries = vo.NewVideoSummaries(rows)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, storageError("list videos", err)
	}
	return vo.NewPage(summaries, req.Page, req.PageSize, total), nil
}

// GetVideoDetail 依次执行：读取视频与作者、可见性校验、播放数自增、记录观看历史、
// 读取统计与用户状态。统计与用户状态读取失败时记录日志并回退为零值，不影响已执行的写入。
func (s *VideoQueryService) GetVideoDetail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*vo.VideoDetail, error) {
	if err := requireID(videoID, "videoId"); err != nil {
		return nil, err
	}
	if viewerID != nil && *viewerID == uuid.Nil {
		viewerID = nil
	}

	video, err := s.videos.GetWithOwner(ctx, nil, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("get video", err)
	}
	if !video.VisibleTo(viewerID) {
		return nil, ErrVideoForbidden
	}

	views, err := s.videos.IncrementViews(ctx, nil, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("increment views", err)
	}
	recordVideoView(ctx)

	if viewerID != nil {
		if err := s.history.Record(ctx, nil, *viewerID, videoID); err != nil {
			return nil, storageError("record watch history", err)
		}
	}

	var (
		stats vo.VideoStats
		state vo.VideoUserState
		g     errgroup.Group
	)
	g.Go(func() error {
		count, err := s.likes.CountByVideo(ctx, nil, videoID)
		if err != nil {
			s.log.WithContext(ctx).Warnf("count video likes failed: video=%s err=%v", videoID, err)
			return nil
		}
		stats.LikeCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.comments.CountByVideo(ctx, nil, videoID)
		if err != nil {
			s.log.WithContext(ctx).Warnf("count video comments failed: video=%s err=%v", videoID, err)
			return nil
		}
		stats.CommentCount = count
		return nil
	})
	if viewerID != nil {
		viewer := *viewerID
		g.Go(func() error {
			_, err := s.likes.Find(ctx, nil, viewer, likeTargetVideo(videoID))
			switch {
			case err == nil:
				state.IsLiked = true
			case errors.Is(err, repositories.ErrLikeNotFound):
			default:
				s.log.WithContext(ctx).Warnf("load like state failed: video=%s user=%s err=%v", videoID, viewer, err)
			}
			return nil
		})
		g.Go(func() error {
			subscribed, err := s.subscriptions.IsSubscribed(ctx, nil, video.OwnerID, viewer)
			if err != nil {
				s.log.WithContext(ctx).Warnf("load subscription state failed: channel=%s user=%s err=%v", video.OwnerID, viewer, err)
				return nil
			}
			state.IsSubscribed = subscribed
			return nil
		})
	}
	_ = g.Wait()

	return vo.NewVideoDetail(video, views, stats, state), nil
}

func likeTargetVideo(videoID uuid.UUID) po.LikeTarget {
	return po.LikeTarget{Kind: po.LikeTargetVideo, ID: videoID}
}

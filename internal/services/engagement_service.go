package services

import (
	"context"
	"errors"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// EngagementService 维护点赞账本：多态目标上的幂等、互斥切换。
type EngagementService struct {
	likes    LikeRepository
	videos   VideoRepository
	comments CommentRepository
	tweets   TweetRepository
	log      *log.Helper
}

// NewEngagementService 构造 EngagementService。
func NewEngagementService(
	likes LikeRepository,
	videos VideoRepository,
	comments CommentRepository,
	tweets TweetRepository,
	logger log.Logger,
) *EngagementService {
	initEngagementMetrics()
	return &EngagementService{
		likes:    likes,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		log:      log.NewHelper(logger),
	}
}

// ToggleLikeInput 描述一次点赞切换。
type ToggleLikeInput struct {
	ActorID  uuid.UUID
	Kind     string // video | comment | tweet
	TargetID uuid.UUID
}

// ToggleLike 已点赞则删除并返回 liked=false，否则插入并返回 liked=true。
// 并发插入由唯一索引裁决，落败方同样返回 liked=true。
func (s *EngagementService) ToggleLike(ctx context.Context, input ToggleLikeInput) (*vo.ToggleLikeResult, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	kind, err := po.ParseLikeTargetKind(input.Kind)
	if err != nil {
		return nil, kerrors.BadRequest(ReasonInvalidLikeTarget, "kind must be one of video, comment, tweet")
	}
	if err := requireID(input.TargetID, "targetId"); err != nil {
		return nil, err
	}
	target := po.LikeTarget{Kind: kind, ID: input.TargetID}

	if err := s.ensureTargetExists(ctx, target); err != nil {
		return nil, err
	}

	liked, err := s.toggle(ctx, input.ActorID, target)
	if err != nil {
		return nil, err
	}
	recordLikeToggle(ctx, string(kind), liked)
	s.log.WithContext(ctx).Debugf("ToggleLike: user=%s kind=%s target=%s liked=%t", input.ActorID, kind, target.ID, liked)
	return &vo.ToggleLikeResult{Kind: string(kind), TargetID: target.ID, Liked: liked}, nil
}

func (s *EngagementService) toggle(ctx context.Context, actorID uuid.UUID, target po.LikeTarget) (bool, error) {
	existing, err := s.likes.Find(ctx, nil, actorID, target)
	switch {
	case err == nil:
		if _, verr := existing.Target(); verr != nil {
			s.log.WithContext(ctx).Errorf("invalid like row: like=%s err=%v", existing.ID, verr)
			return false, kerrors.InternalServer(ReasonInvalidLikeRow, "stored like is invalid").WithCause(verr)
		}
		// 删除影响 0 行说明并发请求已先行取消，结果同样是未点赞。
		if _, err := s.likes.Delete(ctx, nil, existing.ID); err != nil {
			return false, storageError("delete like", err)
		}
		return false, nil
	case errors.Is(err, repositories.ErrLikeNotFound):
	default:
		return false, storageError("find like", err)
	}

	like, err := po.NewLike(actorID, target)
	if err != nil {
		return false, kerrors.BadRequest(ReasonInvalidLikeTarget, "invalid like target").WithCause(err)
	}
	if _, err := s.likes.Insert(ctx, nil, like); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLikeExists):
			return true, nil
		case errors.Is(err, po.ErrInvalidLikeTarget):
			return false, kerrors.InternalServer(ReasonInvalidLikeRow, "like row rejected by storage").WithCause(err)
		default:
			return false, storageError("insert like", err)
		}
	}
	return true, nil
}

func (s *EngagementService) ensureTargetExists(ctx context.Context, target po.LikeTarget) error {
	var (
		exists bool
		err    error
	)
	switch target.Kind {
	case po.LikeTargetVideo:
		exists, err = s.videos.Exists(ctx, nil, target.ID)
	case po.LikeTargetComment:
		exists, err = s.comments.Exists(ctx, nil, target.ID)
	case po.LikeTargetTweet:
		exists, err = s.tweets.Exists(ctx, nil, target.ID)
	}
	if err != nil {
		return storageError("check like target", err)
	}
	if !exists {
		return kerrors.NotFound(ReasonTargetNotFound, string(target.Kind)+" not found")
	}
	return nil
}

// ListLikedVideos 返回用户点赞过的视频，按点赞时间倒序。
func (s *EngagementService) ListLikedVideos(ctx context.Context, actorID uuid.UUID, page, pageSize int) (*vo.Page[*vo.LikedVideo], error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	req := NewPageRequest(page, pageSize, DefaultLikedPageSize)

	total, err := s.likes.CountLikedVideos(ctx, nil, actorID)
	if err != nil {
		return nil, storageError("count liked videos", err)
	}
	rows, err := s.likes.ListLikedVideos(ctx, nil, actorID, req.Limit(), req.Offset())
	if err != nil {
		return nil, storageError("list liked videos", err)
	}
	items := make([]*vo.LikedVideo, 0, len(rows))
	for _, row := range rows {
		if item := vo.NewLikedVideo(row); item != nil {
			items = append(items, item)
		}
	}
	return vo.NewPage(items, req.Page, req.PageSize, total), nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// CommentService 处理评论的分页读取与作者写操作。
type CommentService struct {
	comments CommentRepository
	videos   VideoRepository
	likes    LikeRepository
	log      *log.Helper
}

// NewCommentService 构造 CommentService。
func NewCommentService(comments CommentRepository, videos VideoRepository, likes LikeRepository, logger log.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		videos:   videos,
		likes:    likes,
		log:      log.NewHelper(logger),
	}
}

// AddCommentInput 描述新增评论参数。
type AddCommentInput struct {
	VideoID uuid.UUID
	ActorID uuid.UUID
	Content string
}

// UpdateCommentInput 描述修改评论参数。
type UpdateCommentInput struct {
	CommentID uuid.UUID
	ActorID   uuid.UUID
	Content   string
}

// ListVideoComments 按创建时间倒序分页返回视频评论及作者摘要。
// 页码超出范围时返回空列表。
func (s *CommentService) ListVideoComments(ctx context.Context, videoID uuid.UUID, page, pageSize int) (*vo.Page[*vo.Comment], error) {
	if err := requireID(videoID, "videoId"); err != nil {
		return nil, err
	}
	exists, err := s.videos.Exists(ctx, nil, videoID)
	if err != nil {
		return nil, storageError("check video", err)
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	req := NewPageRequest(page, pageSize, DefaultPageSize)
	total, err := s.comments.CountByVideo(ctx, nil, videoID)
	if err != nil {
		return nil, storageError("count comments", err)
	}
	rows, err := s.comments.ListByVideo(ctx, nil, videoID, req.Limit(), req.Offset())
	if err != nil {
		return nil, storageError("list comments", err)
	}
	items := make([]*vo.Comment, 0, len(rows))
	for _, row := range rows {
		if item := vo.NewComment(row); item != nil {
			items = append(items, item)
		}
	}
	return vo.NewPage(items, req.Page, req.PageSize, total), nil
}

// AddComment 在可见视频下新增评论。
func (s *CommentService) AddComment(ctx context.Context, input AddCommentInput) (*vo.Comment, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	if err := requireID(input.VideoID, "videoId"); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, invalidArgument("content is required")
	}

	video, err := s.videos.Get(ctx, nil, input.VideoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("get video", err)
	}
	actor := input.ActorID
	if !video.VisibleTo(&actor) {
		return nil, ErrVideoForbidden
	}

	comment, err := s.comments.Create(ctx, nil, input.VideoID, input.ActorID, content)
	if err != nil {
		if errors.Is(err, repositories.ErrConstraintViolation) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("create comment", err)
	}
	s.log.WithContext(ctx).Infof("AddComment: comment=%s video=%s user=%s", comment.ID, comment.VideoID, comment.OwnerID)
	return vo.NewPlainComment(comment), nil
}

// UpdateComment 修改评论内容，仅作者可操作。
func (s *CommentService) UpdateComment(ctx context.Context, input UpdateCommentInput) (*vo.Comment, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	if err := requireID(input.CommentID, "commentId"); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, invalidArgument("content is required")
	}
	if err := s.authorize(ctx, input.CommentID, input.ActorID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, nil, input.CommentID, input.ActorID, content)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, storageError("update comment", err)
	}
	return vo.NewPlainComment(updated), nil
}

// DeleteComment 删除评论，并尽力清理该评论上的点赞。
func (s *CommentService) DeleteComment(ctx context.Context, commentID, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	if err := requireID(commentID, "commentId"); err != nil {
		return err
	}
	if err := s.authorize(ctx, commentID, actorID); err != nil {
		return err
	}

	deleted, err := s.comments.Delete(ctx, nil, commentID, actorID)
	if err != nil {
		return storageError("delete comment", err)
	}
	if !deleted {
		return ErrCommentNotFound
	}
	if removed, err := s.likes.DeleteByComment(ctx, nil, commentID); err != nil {
		s.log.WithContext(ctx).Warnf("delete comment likes failed: comment=%s err=%v", commentID, err)
	} else if removed > 0 {
		s.log.WithContext(ctx).Debugf("delete comment likes: comment=%s removed=%d", commentID, removed)
	}
	return nil
}

func (s *CommentService) authorize(ctx context.Context, commentID, actorID uuid.UUID) error {
	comment, err := s.comments.Get(ctx, nil, commentID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		return storageError("get comment", err)
	}
	return authorizeOwner(comment.OwnerID, actorID)
}

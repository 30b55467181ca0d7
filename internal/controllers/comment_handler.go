package controllers

import (
	"context"
	stdhttp "net/http"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers/dto"
	metadata "github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// CommentHandler 处理视频评论路由。
type CommentHandler struct {
	*BaseHandler
	svc services.CommentServiceInterface
}

// NewCommentHandler 构造评论 Handler。
func NewCommentHandler(svc services.CommentServiceInterface, base *BaseHandler) *CommentHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &CommentHandler{BaseHandler: base, svc: svc}
}

// RegisterRoutes 实现 RouteRegistrar。
func (h *CommentHandler) RegisterRoutes(r *khttp.Router) {
	r.GET("/videos/{videoId}/comments", h.ListComments)
	r.POST("/videos/{videoId}/comments", h.AddComment)
	r.PATCH("/comments/{commentId}", h.UpdateComment)
	r.DELETE("/comments/{commentId}", h.DeleteComment)
}

// ListComments 处理 GET /v1/videos/{videoId}/comments，匿名可读。
func (h *CommentHandler) ListComments(ctx khttp.Context) error {
	return h.serve(ctx, OperationListComments, HandlerTypeQuery, stdhttp.StatusOK, "Comments fetched successfully",
		func(c context.Context, _ metadata.HandlerMetadata) (any, error) {
			videoID, err := pathID(ctx, "videoId")
			if err != nil {
				return nil, err
			}
			var q dto.PageQuery
			if err := ctx.BindQuery(&q); err != nil {
				return nil, dto.InvalidBody(err)
			}
			if err := dto.Validate(&q); err != nil {
				return nil, err
			}
			return h.svc.ListVideoComments(c, videoID, q.Page, q.PageSize)
		})
}

// AddComment 处理 POST /v1/videos/{videoId}/comments。
func (h *CommentHandler) AddComment(ctx khttp.Context) error {
	return h.serve(ctx, OperationAddComment, HandlerTypeCommand, stdhttp.StatusOK, "Comment added successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			videoID, err := pathID(ctx, "videoId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			body, err := bindContent(ctx)
			if err != nil {
				return nil, err
			}
			return h.svc.AddComment(c, services.AddCommentInput{VideoID: videoID, ActorID: actor, Content: body.Content})
		})
}

// UpdateComment 处理 PATCH /v1/comments/{commentId}，仅作者可改。
func (h *CommentHandler) UpdateComment(ctx khttp.Context) error {
	return h.serve(ctx, OperationUpdateComment, HandlerTypeCommand, stdhttp.StatusOK, "Comment updated successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			commentID, err := pathID(ctx, "commentId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			body, err := bindContent(ctx)
			if err != nil {
				return nil, err
			}
			return h.svc.UpdateComment(c, services.UpdateCommentInput{CommentID: commentID, ActorID: actor, Content: body.Content})
		})
}

// DeleteComment 处理 DELETE /v1/comments/{commentId}。
func (h *CommentHandler) DeleteComment(ctx khttp.Context) error {
	return h.serve(ctx, OperationDeleteComment, HandlerTypeCommand, stdhttp.StatusOK, "Comment deleted successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			commentID, err := pathID(ctx, "commentId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			if err := h.svc.DeleteComment(c, commentID, actor); err != nil {
				return nil, err
			}
			return map[string]string{"commentId": commentID.String()}, nil
		})
}

func bindContent(ctx khttp.Context) (*dto.ContentRequest, error) {
	var body dto.ContentRequest
	if err := decodeJSON(ctx.Request(), &body); err != nil {
		return nil, err
	}
	if err := dto.Validate(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

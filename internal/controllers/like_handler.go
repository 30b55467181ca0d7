package controllers

import (
	"context"
	stdhttp "net/http"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers/dto"
	metadata "github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// LikeHandler 处理点赞切换与点赞视频列表。
type LikeHandler struct {
	*BaseHandler
	svc services.EngagementServiceInterface
}

// NewLikeHandler 构造点赞 Handler。
func NewLikeHandler(svc services.EngagementServiceInterface, base *BaseHandler) *LikeHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &LikeHandler{BaseHandler: base, svc: svc}
}

// RegisterRoutes 实现 RouteRegistrar。
func (h *LikeHandler) RegisterRoutes(r *khttp.Router) {
	r.GET("/likes/videos", h.ListLikedVideos)
	r.POST("/likes/{kind}/{targetId}", h.ToggleLike)
}

// ToggleLike 处理 POST /v1/likes/{kind}/{targetId}。
func (h *LikeHandler) ToggleLike(ctx khttp.Context) error {
	return h.serve(ctx, OperationToggleLike, HandlerTypeCommand, stdhttp.StatusOK, "Like toggled successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			targetID, err := pathID(ctx, "targetId")
			if err != nil {
				return nil, err
			}
			return h.svc.ToggleLike(c, services.ToggleLikeInput{
				ActorID:  actor,
				Kind:     strings.ToLower(strings.TrimSpace(ctx.Vars().Get("kind"))),
				TargetID: targetID,
			})
		})
}

// ListLikedVideos 处理 GET /v1/likes/videos。
func (h *LikeHandler) ListLikedVideos(ctx khttp.Context) error {
	return h.serve(ctx, OperationListLikedVideos, HandlerTypeQuery, stdhttp.StatusOK, "Liked videos fetched successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			actor, err := RequireActor(meta)
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
			return h.svc.ListLikedVideos(c, actor, q.Page, q.PageSize)
		})
}

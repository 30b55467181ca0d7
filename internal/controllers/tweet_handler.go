package controllers

import (
	"context"
	stdhttp "net/http"

	metadata "github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// TweetHandler 处理动态路由。
type TweetHandler struct {
	*BaseHandler
	svc services.TweetServiceInterface
}

// NewTweetHandler 构造动态 Handler。
func NewTweetHandler(svc services.TweetServiceInterface, base *BaseHandler) *TweetHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &TweetHandler{BaseHandler: base, svc: svc}
}

// RegisterRoutes 实现 RouteRegistrar。
func (h *TweetHandler) RegisterRoutes(r *khttp.Router) {
	r.POST("/tweets", h.CreateTweet)
	r.GET("/users/{userId}/tweets", h.ListUserTweets)
	r.PATCH("/tweets/{tweetId}", h.UpdateTweet)
	r.DELETE("/tweets/{tweetId}", h.DeleteTweet)
}

// CreateTweet 处理 POST /v1/tweets。
func (h *TweetHandler) CreateTweet(ctx khttp.Context) error {
	return h.serve(ctx, OperationCreateTweet, HandlerTypeCommand, stdhttp.StatusCreated, "Tweet created successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			body, err := bindContent(ctx)
			if err != nil {
				return nil, err
			}
			return h.svc.CreateTweet(c, actor, body.Content)
		})
}

// ListUserTweets 处理 GET /v1/users/{userId}/tweets。
func (h *TweetHandler) ListUserTweets(ctx khttp.Context) error {
	return h.serve(ctx, OperationListUserTweets, HandlerTypeQuery, stdhttp.StatusOK, "Tweets fetched successfully",
		func(c context.Context, _ metadata.HandlerMetadata) (any, error) {
			userID, err := pathID(ctx, "userId")
			if err != nil {
				return nil, err
			}
			return h.svc.ListUserTweets(c, userID)
		})
}

// UpdateTweet 处理 PATCH /v1/tweets/{tweetId}。
func (h *TweetHandler) UpdateTweet(ctx khttp.Context) error {
	return h.serve(ctx, OperationUpdateTweet, HandlerTypeCommand, stdhttp.StatusOK, "Tweet updated successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			tweetID, err := pathID(ctx, "tweetId")
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
			return h.svc.UpdateTweet(c, tweetID, actor, body.Content)
		})
}

// DeleteTweet 处理 DELETE /v1/tweets/{tweetId}。
func (h *TweetHandler) DeleteTweet(ctx khttp.Context) error {
	return h.serve(ctx, OperationDeleteTweet, HandlerTypeCommand, stdhttp.StatusOK, "Tweet deleted successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			tweetID, err := pathID(ctx, "tweetId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			if err := h.svc.DeleteTweet(c, tweetID, actor); err != nil {
				return nil, err
			}
			return map[string]string{"tweetId": tweetID.String()}, nil
		})
}

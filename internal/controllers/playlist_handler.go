package controllers

import (
	"context"
	stdhttp "net/http"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers/dto"
	metadata "github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// PlaylistHandler 处理播放列表路由。
type PlaylistHandler struct {
	*BaseHandler
	svc services.PlaylistServiceInterface
}

// NewPlaylistHandler 构造播放列表 Handler。
func NewPlaylistHandler(svc services.PlaylistServiceInterface, base *BaseHandler) *PlaylistHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &PlaylistHandler{BaseHandler: base, svc: svc}
}

// RegisterRoutes 实现 RouteRegistrar。
func (h *PlaylistHandler) RegisterRoutes(r *khttp.Router) {
	r.POST("/playlists", h.CreatePlaylist)
	r.GET("/users/{userId}/playlists", h.ListUserPlaylists)
	r.GET("/playlists/{playlistId}", h.GetPlaylist)
	r.PATCH("/playlists/{playlistId}", h.UpdatePlaylist)
	r.DELETE("/playlists/{playlistId}", h.DeletePlaylist)
	r.POST("/playlists/{playlistId}/videos/{videoId}", h.AddVideo)
	r.DELETE("/playlists/{playlistId}/videos/{videoId}", h.RemoveVideo)
}

// CreatePlaylist 处理 POST /v1/playlists。
func (h *PlaylistHandler) CreatePlaylist(ctx khttp.Context) error {
	return h.serve(ctx, OperationCreatePlaylist, HandlerTypeCommand, stdhttp.StatusCreated, "Playlist created successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			body, err := bindPlaylist(ctx)
			if err != nil {
				return nil, err
			}
			return h.svc.CreatePlaylist(c, services.CreatePlaylistInput{
				ActorID:     actor,
				Name:        body.Name,
				Description: body.Description,
			})
		})
}

// ListUserPlaylists 处理 GET /v1/users/{userId}/playlists。
func (h *PlaylistHandler) ListUserPlaylists(ctx khttp.Context) error {
	return h.serve(ctx, OperationListUserPlaylists, HandlerTypeQuery, stdhttp.StatusOK, "Playlists fetched successfully",
		func(c context.Context, _ metadata.HandlerMetadata) (any, error) {
			userID, err := pathID(ctx, "userId")
			if err != nil {
				return nil, err
			}
			return h.svc.ListUserPlaylists(c, userID)
		})
}

// GetPlaylist 处理 GET /v1/playlists/{playlistId}，展开视频时按调用者过滤未发布视频。
func (h *PlaylistHandler) GetPlaylist(ctx khttp.Context) error {
	return h.serve(ctx, OperationGetPlaylist, HandlerTypeQuery, stdhttp.StatusOK, "Playlist fetched successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			playlistID, err := pathID(ctx, "playlistId")
			if err != nil {
				return nil, err
			}
			viewer, err := OptionalActor(meta)
			if err != nil {
				return nil, err
			}
			return h.svc.GetPlaylist(c, playlistID, viewer)
		})
}

// UpdatePlaylist 处理 PATCH /v1/playlists/{playlistId}。
func (h *PlaylistHandler) UpdatePlaylist(ctx khttp.Context) error {
	return h.serve(ctx, OperationUpdatePlaylist, HandlerTypeCommand, stdhttp.StatusOK, "Playlist updated successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			playlistID, err := pathID(ctx, "playlistId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			body, err := bindPlaylist(ctx)
			if err != nil {
				return nil, err
			}
			return h.svc.UpdatePlaylist(c, services.UpdatePlaylistInput{
				PlaylistID:  playlistID,
				ActorID:     actor,
				Name:        body.Name,
				Description: body.Description,
			})
		})
}

// DeletePlaylist 处理 DELETE /v1/playlists/{playlistId}。
func (h *PlaylistHandler) DeletePlaylist(ctx khttp.Context) error {
	return h.serve(ctx, OperationDeletePlaylist, HandlerTypeCommand, stdhttp.StatusOK, "Playlist deleted successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			playlistID, err := pathID(ctx, "playlistId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			if err := h.svc.DeletePlaylist(c, playlistID, actor); err != nil {
				return nil, err
			}
			return map[string]string{"playlistId": playlistID.String()}, nil
		})
}

// AddVideo 处理 POST /v1/playlists/{playlistId}/videos/{videoId}。
func (h *PlaylistHandler) AddVideo(ctx khttp.Context) error {
	return h.serve(ctx, OperationAddPlaylistVideo, HandlerTypeCommand, stdhttp.StatusOK, "Video added to playlist",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			playlistID, videoID, actor, err := membershipArgs(ctx, meta)
			if err != nil {
				return nil, err
			}
			return h.svc.AddVideo(c, playlistID, videoID, actor)
		})
}

// RemoveVideo 处理 DELETE /v1/playlists/{playlistId}/videos/{videoId}。
func (h *PlaylistHandler) RemoveVideo(ctx khttp.Context) error {
	return h.serve(ctx, OperationRemovePlaylistVid, HandlerTypeCommand, stdhttp.StatusOK, "Video removed from playlist",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			playlistID, videoID, actor, err := membershipArgs(ctx, meta)
			if err != nil {
				return nil, err
			}
			return h.svc.RemoveVideo(c, playlistID, videoID, actor)
		})
}

func membershipArgs(ctx khttp.Context, meta metadata.HandlerMetadata) (playlistID, videoID, actor uuid.UUID, err error) {
	if playlistID, err = pathID(ctx, "playlistId"); err != nil {
		return
	}
	if videoID, err = pathID(ctx, "videoId"); err != nil {
		return
	}
	actor, err = RequireActor(meta)
	return
}

func bindPlaylist(ctx khttp.Context) (*dto.PlaylistRequest, error) {
	var body dto.PlaylistRequest
	if err := decodeJSON(ctx.Request(), &body); err != nil {
		return nil, err
	}
	if err := dto.Validate(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

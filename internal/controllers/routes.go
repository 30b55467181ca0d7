package controllers

import (
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// APIPrefix 是所有业务路由的公共前缀。
const APIPrefix = "/v1"

// Operation 名称供中间件 selector 与日志使用。
const (
	OperationListVideos        = "/media.v1.Videos/List"
	OperationPublishVideo      = "/media.v1.Videos/Publish"
	OperationGetVideo          = "/media.v1.Videos/Get"
	OperationUpdateVideo       = "/media.v1.Videos/Update"
	OperationDeleteVideo       = "/media.v1.Videos/Delete"
	OperationTogglePublish     = "/media.v1.Videos/TogglePublish"
	OperationListComments      = "/media.v1.Comments/List"
	OperationAddComment        = "/media.v1.Comments/Add"
	OperationUpdateComment     = "/media.v1.Comments/Update"
	OperationDeleteComment     = "/media.v1.Comments/Delete"
	OperationToggleLike        = "/media.v1.Likes/Toggle"
	OperationListLikedVideos   = "/media.v1.Likes/ListVideos"
	OperationCreateTweet       = "/media.v1.Tweets/Create"
	OperationListUserTweets    = "/media.v1.Tweets/ListByUser"
	OperationUpdateTweet       = "/media.v1.Tweets/Update"
	OperationDeleteTweet       = "/media.v1.Tweets/Delete"
	OperationCreatePlaylist    = "/media.v1.Playlists/Create"
	OperationListUserPlaylists = "/media.v1.Playlists/ListByUser"
	OperationGetPlaylist       = "/media.v1.Playlists/Get"
	OperationUpdatePlaylist    = "/media.v1.Playlists/Update"
	OperationDeletePlaylist    = "/media.v1.Playlists/Delete"
	OperationAddPlaylistVideo  = "/media.v1.Playlists/AddVideo"
	OperationRemovePlaylistVid = "/media.v1.Playlists/RemoveVideo"
)

// RouteRegistrar 由各资源 Handler 实现，把自身路由挂到 /v1 路由组。
type RouteRegistrar interface {
	RegisterRoutes(r *khttp.Router)
}

// Handlers 聚合全部资源 Handler，供 Server 一次性注册。
type Handlers struct {
	Videos    *VideoHandler
	Comments  *CommentHandler
	Likes     *LikeHandler
	Tweets    *TweetHandler
	Playlists *PlaylistHandler
}

// NewHandlers 构造 Handler 聚合。
func NewHandlers(videos *VideoHandler, comments *CommentHandler, likes *LikeHandler, tweets *TweetHandler, playlists *PlaylistHandler) *Handlers {
	return &Handlers{Videos: videos, Comments: comments, Likes: likes, Tweets: tweets, Playlists: playlists}
}

// Registrars 返回非空的路由注册器。
func (h *Handlers) Registrars() []RouteRegistrar {
	if h == nil {
		return nil
	}
	out := make([]RouteRegistrar, 0, 5)
	if h.Videos != nil {
		out = append(out, h.Videos)
	}
	if h.Comments != nil {
		out = append(out, h.Comments)
	}
	if h.Likes != nil {
		out = append(out, h.Likes)
	}
	if h.Tweets != nil {
		out = append(out, h.Tweets)
	}
	if h.Playlists != nil {
		out = append(out, h.Playlists)
	}
	return out
}

// RegisterHTTPRoutes 将所有 Handler 注册到 Server 的 /v1 前缀下。
func RegisterHTTPRoutes(srv *khttp.Server, registrars ...RouteRegistrar) {
	r := srv.Route(APIPrefix)
	for _, reg := range registrars {
		reg.RegisterRoutes(r)
	}
}

func pathID(ctx khttp.Context, name string) (uuid.UUID, error) {
	return services.ParseID(strings.TrimSpace(ctx.Vars().Get(name)), name)
}

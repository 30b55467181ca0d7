package services

import (
	"context"

	outboxevents "github.com/bionicotaku/lingo-services-engagement/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/uuid"
)

// VideoRepository 抽象视频仓储。
type VideoRepository interface {
	Create(ctx context.Context, sess txmanager.Session, video po.Video) (*po.Video, error)
	Get(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.Video, error)
	GetWithOwner(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.VideoWithOwner, error)
	Exists(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
	UpdateDetails(ctx context.Context, sess txmanager.Session, input repositories.UpdateVideoInput) (*po.Video, error)
	TogglePublish(ctx context.Context, sess txmanager.Session, videoID, ownerID uuid.UUID) (bool, error)
	Delete(ctx context.Context, sess txmanager.Session, videoID, ownerID uuid.UUID) (*po.Video, error)
	List(ctx context.Context, sess txmanager.Session, input repositories.ListVideosInput) ([]*po.VideoWithOwner, error)
	Count(ctx context.Context, sess txmanager.Session, filter repositories.VideoFilter) (int64, error)
	ListByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID, viewerID *uuid.UUID) ([]*po.VideoWithOwner, error)
}

// LikeRepository 抽象点赞仓储。
type LikeRepository interface {
	Find(ctx context.Context, sess txmanager.Session, userID uuid.UUID, target po.LikeTarget) (*po.Like, error)
	Insert(ctx context.Context, sess txmanager.Session, like *po.Like) (*po.Like, error)
	Delete(ctx context.Context, sess txmanager.Session, likeID uuid.UUID) (bool, error)
	CountByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
	DeleteByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
	DeleteByComment(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (int64, error)
	DeleteByTweet(ctx context.Context, sess txmanager.Session, tweetID uuid.UUID) (int64, error)
	DeleteForVideoComments(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
	ListLikedVideos(ctx context.Context, sess txmanager.Session, userID uuid.UUID, limit, offset int32) ([]*po.LikedVideo, error)
	CountLikedVideos(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (int64, error)
}

// CommentRepository 抽象评论仓储。
type CommentRepository interface {
	Create(ctx context.Context, sess txmanager.Session, videoID, ownerID uuid.UUID, content string) (*po.Comment, error)
	Get(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (*po.Comment, error)
	Exists(ctx context.Context, sess txmanager.Session, commentID uuid.UUID) (bool, error)
	UpdateContent(ctx context.Context, sess txmanager.Session, commentID, ownerID uuid.UUID, content string) (*po.Comment, error)
	Delete(ctx context.Context, sess txmanager.Session, commentID, ownerID uuid.UUID) (bool, error)
	ListByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID, limit, offset int32) ([]*po.CommentWithOwner, error)
	CountByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
	DeleteByVideo(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
}

// PlaylistRepository 抽象播放列表仓储。
type PlaylistRepository interface {
	Create(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID, name, description string) (*po.Playlist, error)
	Get(ctx context.Context, sess txmanager.Session, playlistID uuid.UUID) (*po.Playlist, error)
	ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.Playlist, error)
	Update(ctx context.Context, sess txmanager.Session, playlistID, ownerID uuid.UUID, name, description *string) (*po.Playlist, error)
	Delete(ctx context.Context, sess txmanager.Session, playlistID, ownerID uuid.UUID) error
	AddVideo(ctx context.Context, sess txmanager.Session, playlistID, ownerID, videoID uuid.UUID) (bool, error)
	RemoveVideo(ctx context.Context, sess txmanager.Session, playlistID, ownerID, videoID uuid.UUID) error
	RemoveVideoEverywhere(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
}

// TweetRepository 抽象动态仓储。
type TweetRepository interface {
	Create(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID, content string) (*po.Tweet, error)
	Exists(ctx context.Context, sess txmanager.Session, tweetID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.TweetWithOwner, error)
	Update(ctx context.Context, sess txmanager.Session, tweetID, ownerID uuid.UUID, content string) (*po.Tweet, error)
	Delete(ctx context.Context, sess txmanager.Session, tweetID, ownerID uuid.UUID) error
}

// SubscriptionRepository 抽象订阅关系只读查询。
type SubscriptionRepository interface {
	IsSubscribed(ctx context.Context, sess txmanager.Session, channelID, subscriberID uuid.UUID) (bool, error)
}

// WatchHistoryRepository 抽象观看历史写入。
type WatchHistoryRepository interface {
	Record(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) error
}

// OutboxEnqueuer 抽象 Outbox 写入。
type OutboxEnqueuer interface {
	EnqueueEvent(ctx context.Context, sess txmanager.Session, event *outboxevents.DomainEvent) error
}

// EngagementServiceInterface 抽象点赞用例。
type EngagementServiceInterface interface {
	ToggleLike(ctx context.Context, input ToggleLikeInput) (*vo.ToggleLikeResult, error)
	ListLikedVideos(ctx context.Context, actorID uuid.UUID, page, pageSize int) (*vo.Page[*vo.LikedVideo], error)
}

// CommentServiceInterface 抽象评论用例。
type CommentServiceInterface interface {
	ListVideoComments(ctx context.Context, videoID uuid.UUID, page, pageSize int) (*vo.Page[*vo.Comment], error)
	AddComment(ctx context.Context, input AddCommentInput) (*vo.Comment, error)
	UpdateComment(ctx context.Context, input UpdateCommentInput) (*vo.Comment, error)
	DeleteComment(ctx context.Context, commentID, actorID uuid.UUID) error
}

// VideoQueryServiceInterface 抽象视频读取用例。
type VideoQueryServiceInterface interface {
	ListVideos(ctx context.Context, input ListVideosInput) (*vo.Page[*vo.VideoSummary], error)
	GetVideoDetail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*vo.VideoDetail, error)
}

// VideoCommandServiceInterface 抽象视频写入用例。
type VideoCommandServiceInterface interface {
	PublishVideo(ctx context.Context, input PublishVideoInput) (*vo.VideoSummary, error)
	UpdateVideo(ctx context.Context, input UpdateVideoInput) (*vo.VideoSummary, error)
	TogglePublishStatus(ctx context.Context, videoID, actorID uuid.UUID) (*vo.PublishStatus, error)
	DeleteVideo(ctx context.Context, videoID, actorID uuid.UUID) (*vo.VideoDeleted, error)
}

// PlaylistServiceInterface 抽象播放列表用例。
type PlaylistServiceInterface interface {
	CreatePlaylist(ctx context.Context, input CreatePlaylistInput) (*vo.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) (*vo.Playlist, error)
	ListUserPlaylists(ctx context.Context, userID uuid.UUID) ([]*vo.Playlist, error)
	UpdatePlaylist(ctx context.Context, input UpdatePlaylistInput) (*vo.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, actorID uuid.UUID) error
	AddVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) (*vo.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) (*vo.Playlist, error)
}

// TweetServiceInterface 抽象动态用例。
type TweetServiceInterface interface {
	CreateTweet(ctx context.Context, actorID uuid.UUID, content string) (*vo.Tweet, error)
	ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*vo.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID, actorID uuid.UUID, content string) (*vo.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, actorID uuid.UUID) error
}

var (
	_ EngagementServiceInterface   = (*EngagementService)(nil)
	_ CommentServiceInterface      = (*CommentService)(nil)
	_ VideoQueryServiceInterface   = (*VideoQueryService)(nil)
	_ VideoCommandServiceInterface = (*VideoCommandService)(nil)
	_ PlaylistServiceInterface     = (*PlaylistService)(nil)
	_ TweetServiceInterface        = (*TweetService)(nil)
)

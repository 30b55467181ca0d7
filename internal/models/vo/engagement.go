package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/google/uuid"
)

// ToggleLikeResult 表示点赞切换后的状态。
type ToggleLikeResult struct {
	Kind     string    `json:"kind"`
	TargetID uuid.UUID `json:"targetId"`
	Liked    bool      `json:"liked"`
}

// Comment 表示评论视图。
type Comment struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"videoId"`
	Content   string    `json:"content"`
	Owner     Owner     `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewComment 从联表实体构造评论 VO。
func NewComment(comment *po.CommentWithOwner) *Comment {
	if comment == nil {
		return nil
	}
	return &Comment{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		Owner:     NewOwner(comment.Owner),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// NewPlainComment 用于写操作返回，不含作者资料。
func NewPlainComment(comment *po.Comment) *Comment {
	if comment == nil {
		return nil
	}
	return &Comment{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		Owner:     Owner{ID: comment.OwnerID},
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// Tweet 表示动态视图。
type Tweet struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Owner     Owner     `json:"owner"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTweet 构造动态 VO。
func NewTweet(tweet *po.TweetWithOwner) *Tweet {
	if tweet == nil {
		return nil
	}
	return &Tweet{
		ID:      tweet.ID,
		Content: tweet.Content,
		Owner: Owner{
			ID:        tweet.OwnerID,
			Username:  tweet.OwnerUsername,
			AvatarURL: tweet.OwnerAvatarURL,
		},
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
}

// Playlist 表示播放列表视图。Videos 仅在单个读取时填充。
type Playlist struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"ownerId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	VideoIDs    []uuid.UUID     `json:"videoIds"`
	Videos      []*VideoSummary `json:"videos,omitempty"`
	TotalVideos int             `json:"totalVideos"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewPlaylist 构造播放列表 VO。
func NewPlaylist(playlist *po.Playlist) *Playlist {
	if playlist == nil {
		return nil
	}
	ids := append([]uuid.UUID{}, playlist.Videos...)
	return &Playlist{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		VideoIDs:    ids,
		TotalVideos: len(ids),
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}

// Package vo 定义视图对象（View Objects），用于向上层传递业务数据。
// VO 对象由 Service 层返回，经 Controller 层序列化为 HTTP 响应，隔离内部数据结构。
package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/google/uuid"
)

// Owner 表示资源作者的公开摘要。
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	AvatarURL string    `json:"avatar"`
}

// NewOwner 从 PO 作者摘要构造 VO。
func NewOwner(owner po.OwnerSummary) Owner {
	return Owner{
		ID:        owner.ID,
		Username:  owner.Username,
		FullName:  owner.FullName,
		AvatarURL: owner.AvatarURL,
	}
}

// VideoSummary 表示列表与详情共用的视频主体字段。
type VideoSummary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"videoUrl"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	DurationSeconds float64   `json:"duration"`
	Views           int64     `json:"views"`
	IsPublished     bool      `json:"isPublished"`
	Owner           Owner     `json:"owner"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewVideoSummary 从联表实体构造 VO。
func NewVideoSummary(video *po.VideoWithOwner) *VideoSummary {
	if video == nil {
		return nil
	}
	return &VideoSummary{
		ID:              video.ID,
		Title:           video.Title,
		Description:     video.Description,
		VideoURL:        video.VideoURL,
		ThumbnailURL:    video.ThumbnailURL,
		DurationSeconds: video.DurationSeconds,
		Views:           video.Views,
		IsPublished:     video.IsPublished,
		Owner:           NewOwner(video.Owner),
		CreatedAt:       video.CreatedAt,
		UpdatedAt:       video.UpdatedAt,
	}
}

// NewVideoSummaries 批量转换，保持输入顺序。
func NewVideoSummaries(videos []*po.VideoWithOwner) []*VideoSummary {
	items := make([]*VideoSummary, 0, len(videos))
	for _, v := range videos {
		if v == nil {
			continue
		}
		items = append(items, NewVideoSummary(v))
	}
	return items
}

// VideoStats 表示视频的派生计数。
type VideoStats struct {
	LikeCount    int64 `json:"likeCount"`
	CommentCount int64 `json:"commentCount"`
}

// VideoUserState 表示当前用户与视频的关系，匿名访问时全部为 false。
type VideoUserState struct {
	IsLiked      bool `json:"isLiked"`
	IsSubscribed bool `json:"isSubscribed"`
}

// VideoDetail 封装视频详情读取结果。
// Views 为本次访问自增后的值。
type VideoDetail struct {
	VideoSummary
	Stats     VideoStats     `json:"stats"`
	UserState VideoUserState `json:"userState"`
}

// NewVideoDetail 组装详情 VO，views 覆盖为自增后的计数。
func NewVideoDetail(video *po.VideoWithOwner, views int64, stats VideoStats, state VideoUserState) *VideoDetail {
	if video == nil {
		return nil
	}
	summary := NewVideoSummary(video)
	summary.Views = views
	return &VideoDetail{
		VideoSummary: *summary,
		Stats:        stats,
		UserState:    state,
	}
}

// LikedVideo 表示点赞列表项。
type LikedVideo struct {
	VideoSummary
	LikedAt time.Time `json:"likedAt"`
}

// NewLikedVideo 从 PO 构造点赞列表项。
func NewLikedVideo(video *po.LikedVideo) *LikedVideo {
	if video == nil {
		return nil
	}
	return &LikedVideo{
		VideoSummary: *NewVideoSummary(&video.VideoWithOwner),
		LikedAt:      video.LikedAt,
	}
}

// PublishStatus 表示发布状态切换结果。
type PublishStatus struct {
	VideoID     uuid.UUID `json:"videoId"`
	IsPublished bool      `json:"isPublished"`
}

// VideoDeleted 表示删除结果。CascadeErrors 只记录尽力而为清理阶段失败的步骤名，
// 由后台清扫任务最终补齐。
type VideoDeleted struct {
	VideoID       uuid.UUID `json:"videoId"`
	CascadeErrors []string  `json:"cascadeErrors"`
}

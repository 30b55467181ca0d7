// Package po 定义面向持久化的数据对象（Persistent Objects），由 Repository 层使用。
// PO 对象映射数据库表结构，不直接暴露给上层业务逻辑。
//
// 仓储层将 sqlc 生成的模型转换为本包结构体，便于 Service 与 VO 层解耦底层存储实现。
package po

import (
	"time"

	"github.com/google/uuid"
)

// Video 表示 media.videos 表的数据库实体。
type Video struct {
	ID                 uuid.UUID // 主键
	OwnerID            uuid.UUID // 上传者，创建后不可变
	Title              string    // 标题
	Description        string    // 描述
	VideoURL           string    // 视频文件访问地址
	VideoStorageID     string    // 视频文件在媒体存储中的标识
	ThumbnailURL       string    // 封面访问地址
	ThumbnailStorageID string    // 封面在媒体存储中的标识
	DurationSeconds    float64   // 时长（秒）
	Views              int64     // 播放次数，单调递增
	IsPublished        bool      // 是否已发布
	CreatedAt          time.Time // 创建时间
	UpdatedAt          time.Time // 最近更新时间
}

// OwnerSummary 表示 users 投影中的作者摘要。
// 投影缺失时 Username 等字段为空字符串。
type OwnerSummary struct {
	ID        uuid.UUID
	Username  string
	FullName  string
	AvatarURL string
}

// VideoWithOwner 表示联表读取的视频及作者信息。
type VideoWithOwner struct {
	Video
	Owner OwnerSummary
}

// LikedVideo 表示用户点赞过的视频及点赞时间。
type LikedVideo struct {
	VideoWithOwner
	LikedAt time.Time
}

// VisibleTo 判断视频对指定观看者是否可见：已发布或观看者即作者。
// viewer 为 nil 表示匿名访问。
func (v *Video) VisibleTo(viewer *uuid.UUID) bool {
	if v == nil {
		return false
	}
	if v.IsPublished {
		return true
	}
	return viewer != nil && *viewer == v.OwnerID
}

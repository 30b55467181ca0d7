// Package mappers 提供仓储层的模型转换工具，将存储层结果映射为领域实体。
package mappers

import (
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BuildCreateVideoParams 将仓储层输入转换为 sqlc CreateVideoParams。
func BuildCreateVideoParams(video po.Video) mediadb.CreateVideoParams {
	return mediadb.CreateVideoParams{
		OwnerID:            video.OwnerID,
		Title:              video.Title,
		Description:        video.Description,
		VideoUrl:           video.VideoURL,
		VideoStorageID:     video.VideoStorageID,
		ThumbnailUrl:       video.ThumbnailURL,
		ThumbnailStorageID: video.ThumbnailStorageID,
		DurationSeconds:    video.DurationSeconds,
		IsPublished:        video.IsPublished,
	}
}

// BuildUpdateVideoParams 将可选字段转换为 sqlc UpdateVideoDetailsParams，nil 表示保持原值。
func BuildUpdateVideoParams(videoID, ownerID uuid.UUID, title, description, thumbnailURL, thumbnailStorageID *string) mediadb.UpdateVideoDetailsParams {
	return mediadb.UpdateVideoDetailsParams{
		Title:              ToPgText(title),
		Description:        ToPgText(description),
		ThumbnailUrl:       ToPgText(thumbnailURL),
		ThumbnailStorageID: ToPgText(thumbnailStorageID),
		ID:                 videoID,
		OwnerID:            ownerID,
	}
}

// VideoFromRow 将 sqlc 生成的 MediaVideo 转换为领域实体 po.Video。
func VideoFromRow(v mediadb.MediaVideo) *po.Video {
	return &po.Video{
		ID:                 v.ID,
		OwnerID:            v.OwnerID,
		Title:              v.Title,
		Description:        v.Description,
		VideoURL:           v.VideoUrl,
		VideoStorageID:     v.VideoStorageID,
		ThumbnailURL:       v.ThumbnailUrl,
		ThumbnailStorageID: v.ThumbnailStorageID,
		DurationSeconds:    v.DurationSeconds,
		Views:              v.Views,
		IsPublished:        v.IsPublished,
		CreatedAt:          mustTimestamp(v.CreatedAt),
		UpdatedAt:          mustTimestamp(v.UpdatedAt),
	}
}

// VideoWithOwnerFromRow 转换详情联表查询结果。
func VideoWithOwnerFromRow(r mediadb.GetVideoWithOwnerRow) *po.VideoWithOwner {
	return &po.VideoWithOwner{
		Video: po.Video{
			ID:                 r.ID,
			OwnerID:            r.OwnerID,
			Title:              r.Title,
			Description:        r.Description,
			VideoURL:           r.VideoUrl,
			VideoStorageID:     r.VideoStorageID,
			ThumbnailURL:       r.ThumbnailUrl,
			ThumbnailStorageID: r.ThumbnailStorageID,
			DurationSeconds:    r.DurationSeconds,
			Views:              r.Views,
			IsPublished:        r.IsPublished,
			CreatedAt:          mustTimestamp(r.CreatedAt),
			UpdatedAt:          mustTimestamp(r.UpdatedAt),
		},
		Owner: ownerSummary(r.OwnerID, r.OwnerUsername, r.OwnerFullName, r.OwnerAvatarUrl),
	}
}

// VideoWithOwnerFromListRow 转换列表查询结果。列表与详情的列集合一致。
func VideoWithOwnerFromListRow(r mediadb.ListVideosRow) *po.VideoWithOwner {
	return VideoWithOwnerFromRow(mediadb.GetVideoWithOwnerRow(r))
}

// VideoWithOwnerFromIDsRow 转换按 ID 批量查询的结果。
func VideoWithOwnerFromIDsRow(r mediadb.ListVideosByIDsRow) *po.VideoWithOwner {
	return VideoWithOwnerFromRow(mediadb.GetVideoWithOwnerRow(r))
}

// LikedVideoFromRow 转换点赞视频列表行。
func LikedVideoFromRow(r mediadb.ListLikedVideosRow) *po.LikedVideo {
	base := VideoWithOwnerFromRow(mediadb.GetVideoWithOwnerRow{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		Title:              r.Title,
		Description:        r.Description,
		VideoUrl:           r.VideoUrl,
		VideoStorageID:     r.VideoStorageID,
		ThumbnailUrl:       r.ThumbnailUrl,
		ThumbnailStorageID: r.ThumbnailStorageID,
		DurationSeconds:    r.DurationSeconds,
		Views:              r.Views,
		IsPublished:        r.IsPublished,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		OwnerUsername:      r.OwnerUsername,
		OwnerFullName:      r.OwnerFullName,
		OwnerAvatarUrl:     r.OwnerAvatarUrl,
	})
	return &po.LikedVideo{
		VideoWithOwner: *base,
		LikedAt:        mustTimestamp(r.LikedAt),
	}
}

func ownerSummary(id uuid.UUID, username, fullName, avatar pgtype.Text) po.OwnerSummary {
	return po.OwnerSummary{
		ID:        id,
		Username:  username.String,
		FullName:  fullName.String,
		AvatarURL: avatar.String,
	}
}

func mustTimestamp(value pgtype.Timestamptz) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return value.Time.UTC()
}

// ToPgText 将可选字符串转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

// ToNullUUID 将可选 UUID 转换为 uuid.NullUUID。
func ToNullUUID(value *uuid.UUID) uuid.NullUUID {
	if value == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *value, Valid: true}
}

func uuidPtr(value uuid.NullUUID) *uuid.UUID {
	if !value.Valid {
		return nil
	}
	id := value.UUID
	return &id
}

package mappers

import (
	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"

	"github.com/google/uuid"
)

// BuildInsertLikeParams 将已校验的点赞记录转换为 sqlc 插入参数。
func BuildInsertLikeParams(like *po.Like) mediadb.InsertLikeParams {
	return mediadb.InsertLikeParams{
		LikedBy:   like.LikedBy,
		VideoID:   ToNullUUID(like.VideoID),
		CommentID: ToNullUUID(like.CommentID),
		TweetID:   ToNullUUID(like.TweetID),
	}
}

// LikeFromRow 转换点赞记录。
func LikeFromRow(row mediadb.MediaLike) *po.Like {
	return &po.Like{
		ID:        row.ID,
		LikedBy:   row.LikedBy,
		VideoID:   uuidPtr(row.VideoID),
		CommentID: uuidPtr(row.CommentID),
		TweetID:   uuidPtr(row.TweetID),
		CreatedAt: mustTimestamp(row.CreatedAt),
	}
}

// CommentFromRow 转换评论记录。
func CommentFromRow(row mediadb.MediaComment) *po.Comment {
	return &po.Comment{
		ID:        row.ID,
		VideoID:   row.VideoID,
		OwnerID:   row.OwnerID,
		Content:   row.Content,
		CreatedAt: mustTimestamp(row.CreatedAt),
		UpdatedAt: mustTimestamp(row.UpdatedAt),
	}
}

// CommentWithOwnerFromRow 转换评论联表结果。
func CommentWithOwnerFromRow(row mediadb.ListCommentsByVideoRow) *po.CommentWithOwner {
	return &po.CommentWithOwner{
		Comment: po.Comment{
			ID:        row.ID,
			VideoID:   row.VideoID,
			OwnerID:   row.OwnerID,
			Content:   row.Content,
			CreatedAt: mustTimestamp(row.CreatedAt),
			UpdatedAt: mustTimestamp(row.UpdatedAt),
		},
		Owner: ownerSummary(row.OwnerID, row.OwnerUsername, row.OwnerFullName, row.OwnerAvatarUrl),
	}
}

// PlaylistFromRow 转换播放列表记录。
func PlaylistFromRow(row mediadb.MediaPlaylist) *po.Playlist {
	videos := row.Videos
	if videos == nil {
		videos = []uuid.UUID{}
	}
	return &po.Playlist{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Videos:      videos,
		CreatedAt:   mustTimestamp(row.CreatedAt),
		UpdatedAt:   mustTimestamp(row.UpdatedAt),
	}
}

// TweetFromRow 转换动态记录。
func TweetFromRow(row mediadb.MediaTweet) *po.Tweet {
	return &po.Tweet{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Content:   row.Content,
		CreatedAt: mustTimestamp(row.CreatedAt),
		UpdatedAt: mustTimestamp(row.UpdatedAt),
	}
}

// TweetWithOwnerFromRow 转换动态联表结果。
func TweetWithOwnerFromRow(row mediadb.ListTweetsByOwnerRow) *po.TweetWithOwner {
	return &po.TweetWithOwner{
		Tweet: po.Tweet{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			Content:   row.Content,
			CreatedAt: mustTimestamp(row.CreatedAt),
			UpdatedAt: mustTimestamp(row.UpdatedAt),
		},
		OwnerUsername:  row.OwnerUsername.String,
		OwnerAvatarURL: row.OwnerAvatarUrl.String,
	}
}

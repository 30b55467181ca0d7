package mappers_test

import (
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateVideoParams(t *testing.T) {
	videoID, ownerID := uuid.New(), uuid.New()
	title := "新标题"

	params := mappers.BuildUpdateVideoParams(videoID, ownerID, &title, nil, nil, nil)

	assert.Equal(t, videoID, params.ID)
	assert.Equal(t, ownerID, params.OwnerID)
	assert.True(t, params.Title.Valid)
	assert.Equal(t, title, params.Title.String)
	assert.False(t, params.Description.Valid, "nil 字段保持原值")
	assert.False(t, params.ThumbnailUrl.Valid)
}

func TestVideoWithOwnerFromRow(t *testing.T) {
	now := time.Now().UTC()
	ownerID := uuid.New()
	row := mediadb.GetVideoWithOwnerRow{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Title:          "t",
		Views:          7,
		IsPublished:    false,
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		OwnerUsername:  pgtype.Text{String: "bob", Valid: true},
		OwnerAvatarUrl: pgtype.Text{},
	}

	got := mappers.VideoWithOwnerFromRow(row)
	require.NotNil(t, got)
	assert.Equal(t, row.ID, got.ID)
	assert.Equal(t, int64(7), got.Views)
	assert.Equal(t, ownerID, got.Owner.ID)
	assert.Equal(t, "bob", got.Owner.Username)
	assert.Empty(t, got.Owner.AvatarURL)
	assert.True(t, now.Equal(got.CreatedAt))
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestLikeMapping(t *testing.T) {
	videoID := uuid.New()
	like, err := po.NewLike(uuid.New(), po.LikeTarget{Kind: po.LikeTargetVideo, ID: videoID})
	require.NoError(t, err)

	params := mappers.BuildInsertLikeParams(like)
	assert.True(t, params.VideoID.Valid)
	assert.Equal(t, videoID, params.VideoID.UUID)
	assert.False(t, params.CommentID.Valid)
	assert.False(t, params.TweetID.Valid)

	row := mediadb.MediaLike{
		ID:      uuid.New(),
		LikedBy: like.LikedBy,
		TweetID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
	}
	got := mappers.LikeFromRow(row)
	target, err := got.Target()
	require.NoError(t, err)
	assert.Equal(t, po.LikeTargetTweet, target.Kind)
	assert.Nil(t, got.VideoID)
}

func TestPlaylistFromRowNilVideos(t *testing.T) {
	got := mappers.PlaylistFromRow(mediadb.MediaPlaylist{ID: uuid.New(), Name: "n"})
	require.NotNil(t, got.Videos)
	assert.Empty(t, got.Videos)
}

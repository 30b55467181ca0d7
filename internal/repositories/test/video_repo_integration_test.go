package repositories_test

import (
	"io"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestVideoRepositoryIntegration(t *testing.T) {
	t.Parallel()

	ctx, pool := setupPool(t)
	repo := repositories.NewVideoRepository(pool, log.NewStdLogger(io.Discard))

	userA := insertUser(ctx, t, pool, "user-a")
	userB := insertUser(ctx, t, pool, "user-b")

	base := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	older := insertVideo(ctx, t, pool, videoSeed{OwnerID: userA, Title: "Golang basics", Duration: 30, Views: 5, IsPublished: true, CreatedAt: base})
	newer := insertVideo(ctx, t, pool, videoSeed{OwnerID: userB, Title: "Cooking 100% pasta", Duration: 10, Views: 50, IsPublished: true, CreatedAt: base.Add(time.Hour)})
	draft := insertVideo(ctx, t, pool, videoSeed{OwnerID: userA, Title: "Draft golang", Duration: 20, IsPublished: false, CreatedAt: base.Add(2 * time.Hour)})

	t.Run("views increment atomically", func(t *testing.T) {
		fresh := insertVideo(ctx, t, pool, videoSeed{OwnerID: userA, Title: "fresh", IsPublished: true})
		views, err := repo.IncrementViews(ctx, nil, fresh)
		require.NoError(t, err)
		require.Equal(t, int64(1), views)
		views, err = repo.IncrementViews(ctx, nil, fresh)
		require.NoError(t, err)
		require.Equal(t, int64(2), views)

		_, err = repo.IncrementViews(ctx, nil, uuid.New())
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("get with owner", func(t *testing.T) {
		got, err := repo.GetWithOwner(ctx, nil, older)
		require.NoError(t, err)
		require.Equal(t, "user-a", got.Owner.Username)
		require.Equal(t, "user-a full", got.Owner.FullName)

		_, err = repo.GetWithOwner(ctx, nil, uuid.New())
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("anonymous listing hides drafts", func(t *testing.T) {
		items, err := repo.List(ctx, nil, repositories.ListVideosInput{SortDesc: true, Limit: 10})
		require.NoError(t, err)
		ids := videoIDs(items)
		require.NotContains(t, ids, draft)
		require.Contains(t, ids, older)

		total, err := repo.Count(ctx, nil, repositories.VideoFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(len(items)), total)
	})

	t.Run("owner sees own drafts", func(t *testing.T) {
		items, err := repo.List(ctx, nil, repositories.ListVideosInput{
			VideoFilter: repositories.VideoFilter{OwnerID: &userA, ViewerID: &userA},
			SortDesc:    true,
			Limit:       10,
		})
		require.NoError(t, err)
		require.Contains(t, videoIDs(items), draft)

		other, err := repo.List(ctx, nil, repositories.ListVideosInput{
			VideoFilter: repositories.VideoFilter{OwnerID: &userA, ViewerID: &userB},
			Limit:       10,
		})
		require.NoError(t, err)
		require.NotContains(t, videoIDs(other), draft)
	})

	t.Run("search is case insensitive and escapes wildcards", func(t *testing.T) {
		items, err := repo.List(ctx, nil, repositories.ListVideosInput{
			VideoFilter: repositories.VideoFilter{Query: stringPtr("GOLANG")},
			Limit:       10,
		})
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{older}, videoIDs(items))

		items, err = repo.List(ctx, nil, repositories.ListVideosInput{
			VideoFilter: repositories.VideoFilter{Query: stringPtr("100%")},
			Limit:       10,
		})
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{newer}, videoIDs(items))

		items, err = repo.List(ctx, nil, repositories.ListVideosInput{
			VideoFilter: repositories.VideoFilter{Query: stringPtr("_")},
			Limit:       10,
		})
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("sort by views asc", func(t *testing.T) {
		items, err := repo.List(ctx, nil, repositories.ListVideosInput{
			VideoFilter: repositories.VideoFilter{Query: stringPtr("o")},
			SortBy:      repositories.VideoSortViews,
			SortDesc:    false,
			Limit:       10,
		})
		require.NoError(t, err)
		require.Equal(t, []uuid.UUID{older, newer}, videoIDs(items))
	})

	t.Run("owner conditional writes", func(t *testing.T) {
		_, err := repo.TogglePublish(ctx, nil, draft, userB)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)

		published, err := repo.TogglePublish(ctx, nil, draft, userA)
		require.NoError(t, err)
		require.True(t, published)

		title := "Renamed"
		updated, err := repo.UpdateDetails(ctx, nil, repositories.UpdateVideoInput{VideoID: draft, OwnerID: userA, Title: &title})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, "", updated.Description)

		_, err = repo.Delete(ctx, nil, draft, userB)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)

		removed, err := repo.Delete(ctx, nil, draft, userA)
		require.NoError(t, err)
		require.Equal(t, draft, removed.ID)

		exists, err := repo.Exists(ctx, nil, draft)
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("create rejects blank title", func(t *testing.T) {
		_, err := repo.Create(ctx, nil, po.Video{OwnerID: userA, Title: "   ", VideoURL: "u", VideoStorageID: "s", ThumbnailURL: "t", ThumbnailStorageID: "ts"})
		require.ErrorIs(t, err, repositories.ErrConstraintViolation)
	})
}

func videoIDs(items []*po.VideoWithOwner) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

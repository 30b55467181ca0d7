package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-engagement/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/bionicotaku/lingo-services-engagement/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type videoCommandMocks struct {
	videos    *mocks.MockVideoRepository
	outbox    *mocks.MockOutboxEnqueuer
	media     *mocks.MockMediaStore
	likes     *mocks.MockLikeRepository
	comments  *mocks.MockCommentRepository
	playlists *mocks.MockPlaylistRepository
}

func newVideoCommandService(t *testing.T) (*services.VideoCommandService, videoCommandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := videoCommandMocks{
		videos:    mocks.NewMockVideoRepository(ctrl),
		outbox:    mocks.NewMockOutboxEnqueuer(ctrl),
		media:     mocks.NewMockMediaStore(ctrl),
		likes:     mocks.NewMockLikeRepository(ctrl),
		comments:  mocks.NewMockCommentRepository(ctrl),
		playlists: mocks.NewMockPlaylistRepository(ctrl),
	}
	cascade := services.NewCascadeService(m.likes, m.comments, m.playlists, m.media, discardLogger())
	svc := services.NewVideoCommandService(m.videos, m.outbox, m.media, cascade, fakeTxManager{}, discardLogger())
	return svc, m
}

func publishInput(actor uuid.UUID) services.PublishVideoInput {
	return services.PublishVideoInput{
		ActorID:         actor,
		Title:           "  My trip ",
		Description:     "holiday",
		DurationSeconds: 12.5,
		Video:           &services.MediaUpload{Name: "trip.mp4", Reader: strings.NewReader("video"), Size: 5, ContentType: "video/mp4"},
		Thumbnail:       &services.MediaUpload{Name: "trip.png", Reader: strings.NewReader("png"), Size: 3, ContentType: "image/png"},
	}
}

func TestVideoCommandService_PublishVideo_Success(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	actor := uuid.New()

	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindVideo, gomock.Any()).Return(&services.StoredMedia{URL: "http://media/v", StorageID: "videos/v"}, nil)
	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindThumbnail, gomock.Any()).Return(&services.StoredMedia{URL: "http://media/t", StorageID: "thumbnails/t"}, nil)
	m.videos.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, video po.Video) (*po.Video, error) {
			video.ID = uuid.New()
			video.CreatedAt = time.Now().UTC()
			video.UpdatedAt = video.CreatedAt
			return &video, nil
		})
	var enqueued *outboxevents.DomainEvent
	m.outbox.EXPECT().EnqueueEvent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, evt *outboxevents.DomainEvent) error {
			enqueued = evt
			return nil
		})

	summary, err := svc.PublishVideo(context.Background(), publishInput(actor))
	require.NoError(t, err)
	require.Equal(t, "My trip", summary.Title)
	require.Equal(t, "http://media/v", summary.VideoURL)
	require.Equal(t, "http://media/t", summary.ThumbnailURL)
	require.True(t, summary.IsPublished)
	require.Equal(t, actor, summary.Owner.ID)
	require.NotNil(t, enqueued)
	require.Equal(t, outboxevents.KindVideoCreated, enqueued.Kind)
	require.Equal(t, summary.ID, enqueued.AggregateID)
}

func TestVideoCommandService_PublishVideo_CompensatesInReverse(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	actor := uuid.New()

	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindVideo, gomock.Any()).Return(&services.StoredMedia{URL: "u1", StorageID: "videos/1"}, nil)
	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindThumbnail, gomock.Any()).Return(&services.StoredMedia{URL: "u2", StorageID: "thumbnails/2"}, nil)
	m.videos.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))

	var undone []string
	gomock.InOrder(
		m.media.EXPECT().Delete(gomock.Any(), services.MediaKindThumbnail, "thumbnails/2").DoAndReturn(
			func(_ context.Context, _ services.MediaKind, id string) error {
				undone = append(undone, id)
				return nil
			}),
		m.media.EXPECT().Delete(gomock.Any(), services.MediaKindVideo, "videos/1").DoAndReturn(
			func(_ context.Context, _ services.MediaKind, id string) error {
				undone = append(undone, id)
				return errors.New("still gone")
			}),
	)

	_, err := svc.PublishVideo(context.Background(), publishInput(actor))
	reason, code := reasonOf(err)
	require.Equal(t, services.ReasonInternal, reason)
	require.Equal(t, 500, code)
	require.Equal(t, []string{"thumbnails/2", "videos/1"}, undone)
}

func TestVideoCommandService_PublishVideo_ThumbnailUploadFails(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)

	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindVideo, gomock.Any()).Return(&services.StoredMedia{URL: "u1", StorageID: "videos/1"}, nil)
	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindThumbnail, gomock.Any()).Return(nil, errors.New("bucket offline"))
	m.media.EXPECT().Delete(gomock.Any(), services.MediaKindVideo, "videos/1").Return(nil)

	_, err := svc.PublishVideo(context.Background(), publishInput(uuid.New()))
	reason, code := reasonOf(err)
	require.Equal(t, services.ReasonMediaUnavailable, reason)
	require.Equal(t, 503, code)
}

func TestVideoCommandService_PublishVideo_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newVideoCommandService(t)

	in := publishInput(uuid.New())
	in.Title = "   "
	_, err := svc.PublishVideo(context.Background(), in)
	reason, _ := reasonOf(err)
	require.Equal(t, services.ReasonInvalidArgument, reason)

	in = publishInput(uuid.New())
	in.Thumbnail = nil
	_, err = svc.PublishVideo(context.Background(), in)
	reason, _ = reasonOf(err)
	require.Equal(t, services.ReasonInvalidArgument, reason)

	_, err = svc.PublishVideo(context.Background(), publishInput(uuid.Nil))
	reason, code := reasonOf(err)
	require.Equal(t, services.ReasonUnauthenticated, reason)
	require.Equal(t, 401, code)
}

func TestVideoCommandService_OwnerOnly(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	owner, intruder := uuid.New(), uuid.New()
	video := &po.Video{ID: uuid.New(), OwnerID: owner}
	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), video.ID).Return(video, nil).Times(3)

	_, err := svc.TogglePublishStatus(context.Background(), video.ID, intruder)
	reason, code := reasonOf(err)
	require.Equal(t, services.ReasonNotOwner, reason)
	require.Equal(t, 403, code)

	_, err = svc.DeleteVideo(context.Background(), video.ID, intruder)
	reason, _ = reasonOf(err)
	require.Equal(t, services.ReasonNotOwner, reason)

	_, err = svc.UpdateVideo(context.Background(), services.UpdateVideoInput{VideoID: video.ID, ActorID: intruder, Title: ptrString("x")})
	reason, _ = reasonOf(err)
	require.Equal(t, services.ReasonNotOwner, reason)
}

func TestVideoCommandService_TogglePublishStatus(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	owner := uuid.New()
	video := &po.Video{ID: uuid.New(), OwnerID: owner, IsPublished: true}
	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), video.ID).Return(video, nil)
	m.videos.EXPECT().TogglePublish(gomock.Any(), gomock.Nil(), video.ID, owner).Return(false, nil)

	status, err := svc.TogglePublishStatus(context.Background(), video.ID, owner)
	require.NoError(t, err)
	require.False(t, status.IsPublished)
	require.Equal(t, video.ID, status.VideoID)
}

func TestVideoCommandService_UpdateVideo_ReplacesThumbnail(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	owner := uuid.New()
	current := &po.Video{ID: uuid.New(), OwnerID: owner, ThumbnailStorageID: "thumbnails/old"}

	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), current.ID).Return(current, nil)
	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindThumbnail, gomock.Any()).Return(&services.StoredMedia{URL: "http://media/new", StorageID: "thumbnails/new"}, nil)
	m.videos.EXPECT().UpdateDetails(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, input repositories.UpdateVideoInput) (*po.Video, error) {
			updated := *current
			updated.Title = *input.Title
			updated.ThumbnailURL = *input.ThumbnailURL
			updated.ThumbnailStorageID = *input.ThumbnailStorageID
			return &updated, nil
		})
	m.media.EXPECT().Delete(gomock.Any(), services.MediaKindThumbnail, "thumbnails/old").Return(nil)

	summary, err := svc.UpdateVideo(context.Background(), services.UpdateVideoInput{
		VideoID:   current.ID,
		ActorID:   owner,
		Title:     ptrString(" renamed "),
		Thumbnail: &services.MediaUpload{Name: "n.png", Reader: strings.NewReader("png"), Size: 3},
	})
	require.NoError(t, err)
	require.Equal(t, "renamed", summary.Title)
	require.Equal(t, "http://media/new", summary.ThumbnailURL)
}

func TestVideoCommandService_UpdateVideo_RollsBackUploadedThumbnail(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	owner := uuid.New()
	current := &po.Video{ID: uuid.New(), OwnerID: owner, ThumbnailStorageID: "thumbnails/old"}

	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), current.ID).Return(current, nil)
	m.media.EXPECT().Upload(gomock.Any(), services.MediaKindThumbnail, gomock.Any()).Return(&services.StoredMedia{URL: "u", StorageID: "thumbnails/new"}, nil)
	m.videos.EXPECT().UpdateDetails(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil, errors.New("write failed"))
	m.media.EXPECT().Delete(gomock.Any(), services.MediaKindThumbnail, "thumbnails/new").Return(nil)

	_, err := svc.UpdateVideo(context.Background(), services.UpdateVideoInput{
		VideoID:   current.ID,
		ActorID:   owner,
		Thumbnail: &services.MediaUpload{Name: "n.png", Reader: strings.NewReader("png"), Size: 3},
	})
	require.Error(t, err)
}

func TestVideoCommandService_DeleteVideo_CollectsCascadeErrors(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	owner := uuid.New()
	video := &po.Video{ID: uuid.New(), OwnerID: owner, VideoStorageID: "videos/1", ThumbnailStorageID: "thumbnails/1"}

	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), video.ID).Return(video, nil)
	m.videos.EXPECT().Delete(gomock.Any(), gomock.Any(), video.ID, owner).Return(video, nil)
	m.outbox.EXPECT().EnqueueEvent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, evt *outboxevents.DomainEvent) error {
			require.Equal(t, outboxevents.KindVideoDeleted, evt.Kind)
			return nil
		})
	gomock.InOrder(
		m.likes.EXPECT().DeleteForVideoComments(gomock.Any(), gomock.Nil(), video.ID).Return(int64(2), nil),
		m.likes.EXPECT().DeleteByVideo(gomock.Any(), gomock.Nil(), video.ID).Return(int64(0), errors.New("likes down")),
		m.comments.EXPECT().DeleteByVideo(gomock.Any(), gomock.Nil(), video.ID).Return(int64(4), nil),
		m.playlists.EXPECT().RemoveVideoEverywhere(gomock.Any(), gomock.Nil(), video.ID).Return(int64(1), nil),
	)
	m.media.EXPECT().Delete(gomock.Any(), services.MediaKindVideo, "videos/1").Return(nil)
	m.media.EXPECT().Delete(gomock.Any(), services.MediaKindThumbnail, "thumbnails/1").Return(errors.New("blob locked"))

	result, err := svc.DeleteVideo(context.Background(), video.ID, owner)
	require.NoError(t, err)
	require.Equal(t, video.ID, result.VideoID)
	require.Equal(t, []string{"delete video likes", "delete thumbnail object"}, result.CascadeErrors)
	for _, msg := range result.CascadeErrors {
		require.NotContains(t, msg, "likes down")
		require.NotContains(t, msg, "blob locked")
	}
}

func TestVideoCommandService_DeleteVideo_OutboxFailureAborts(t *testing.T) {
	t.Parallel()

	svc, m := newVideoCommandService(t)
	owner := uuid.New()
	video := &po.Video{ID: uuid.New(), OwnerID: owner}

	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), video.ID).Return(video, nil)
	m.videos.EXPECT().Delete(gomock.Any(), gomock.Any(), video.ID, owner).Return(video, nil)
	m.outbox.EXPECT().EnqueueEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

	_, err := svc.DeleteVideo(context.Background(), video.ID, owner)
	_, code := reasonOf(err)
	require.Equal(t, 500, code)
}

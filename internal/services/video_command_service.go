package services

import (
	"context"
	"errors"
	"strings"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-engagement/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoCommandService 负责视频的发布、修改、发布状态切换与删除。
// 行写入与领域事件在同一事务内落库。
type VideoCommandService struct {
	videos    VideoRepository
	outbox    OutboxEnqueuer
	media     MediaStore
	cascade   *CascadeService
	txManager txmanager.Manager
	log       *log.Helper
}

// NewVideoCommandService 构造 VideoCommandService。
func NewVideoCommandService(
	videos VideoRepository,
	outbox OutboxEnqueuer,
	media MediaStore,
	cascade *CascadeService,
	tx txmanager.Manager,
	logger log.Logger,
) *VideoCommandService {
	initEngagementMetrics()
	return &VideoCommandService{
		videos:    videos,
		outbox:    outbox,
		media:     media,
		cascade:   cascade,
		txManager: tx,
		log:       log.NewHelper(logger),
	}
}

// PublishVideoInput 描述发布视频参数。视频与封面文件均为必填。
type PublishVideoInput struct {
	ActorID         uuid.UUID
	Title           string
	Description     string
	DurationSeconds float64
	Video           *MediaUpload
	Thumbnail       *MediaUpload
}

// UpdateVideoInput 描述视频修改参数，nil 字段保持原值。
type UpdateVideoInput struct {
	VideoID     uuid.UUID
	ActorID     uuid.UUID
	Title       *string
	Description *string
	Thumbnail   *MediaUpload
}

// PublishVideo 先上传视频与封面，再在事务内写入视频行与创建事件。
// 任一步骤失败时倒序执行已登记的补偿动作，再返回错误。
func (s *VideoCommandService) PublishVideo(ctx context.Context, input PublishVideoInput) (*vo.VideoSummary, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalidArgument("title is required")
	}
	if input.Video == nil || input.Video.Reader == nil {
		return nil, invalidArgument("video file is required")
	}
	if input.Thumbnail == nil || input.Thumbnail.Reader == nil {
		return nil, invalidArgument("thumbnail is required")
	}
	if input.DurationSeconds < 0 {
		return nil, invalidArgument("duration must not be negative")
	}

	var undo compensations
	fail := func(err error) error {
		for _, cerr := range undo.run(ctx) {
			s.log.WithContext(ctx).Errorf("publish video compensation failed: user=%s err=%v", input.ActorID, cerr)
		}
		return err
	}

	videoObj, err := s.media.Upload(ctx, MediaKindVideo, *input.Video)
	if err != nil {
		s.log.WithContext(ctx).Errorf("upload video failed: user=%s err=%v", input.ActorID, err)
		return nil, mediaError("upload video", err)
	}
	undo.add("delete uploaded video", func(ctx context.Context) error {
		return s.media.Delete(ctx, MediaKindVideo, videoObj.StorageID)
	})

	thumbObj, err := s.media.Upload(ctx, MediaKindThumbnail, *input.Thumbnail)
	if err != nil {
		s.log.WithContext(ctx).Errorf("upload thumbnail failed: user=%s err=%v", input.ActorID, err)
		return nil, fail(mediaError("upload thumbnail", err))
	}
	undo.add("delete uploaded thumbnail", func(ctx context.Context) error {
		return s.media.Delete(ctx, MediaKindThumbnail, thumbObj.StorageID)
	})

	var created *po.Video
	err = s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		video, repoErr := s.videos.Create(txCtx, sess, po.Video{
			OwnerID:            input.ActorID,
			Title:              title,
			Description:        strings.TrimSpace(input.Description),
			VideoURL:           videoObj.URL,
			VideoStorageID:     videoObj.StorageID,
			ThumbnailURL:       thumbObj.URL,
			ThumbnailStorageID: thumbObj.StorageID,
			DurationSeconds:    input.DurationSeconds,
			IsPublished:        true,
		})
		if repoErr != nil {
			return repoErr
		}
		evt, buildErr := outboxevents.NewVideoCreatedEvent(video, uuid.New(), eventTime(video.CreatedAt))
		if buildErr != nil {
			return buildErr
		}
		if err := s.enqueue(txCtx, sess, evt); err != nil {
			return err
		}
		created = video
		return nil
	})
	if err != nil {
		s.log.WithContext(ctx).Errorf("create video failed: user=%s title=%s err=%v", input.ActorID, title, err)
		return nil, fail(storageError("create video", err))
	}

	s.log.WithContext(ctx).Infof("PublishVideo: video=%s user=%s", created.ID, created.OwnerID)
	return vo.NewVideoSummary(&po.VideoWithOwner{Video: *created, Owner: po.OwnerSummary{ID: created.OwnerID}}), nil
}

// UpdateVideo 修改标题、描述或封面，仅作者可操作。
// 新封面先上传，行更新失败时删除新封面；更新成功后尽力删除旧封面。
func (s *VideoCommandService) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*vo.VideoSummary, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	if err := requireID(input.VideoID, "videoId"); err != nil {
		return nil, err
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, invalidArgument("title must not be blank")
		}
		input.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		input.Description = &desc
	}
	hasThumbnail := input.Thumbnail != nil && input.Thumbnail.Reader != nil
	if input.Title == nil && input.Description == nil && !hasThumbnail {
		return nil, invalidArgument("no fields to update")
	}

	current, err := s.loadOwned(ctx, input.VideoID, input.ActorID)
	if err != nil {
		return nil, err
	}

	repoInput := repositories.UpdateVideoInput{
		VideoID:     input.VideoID,
		OwnerID:     input.ActorID,
		Title:       input.Title,
		Description: input.Description,
	}

	var undo compensations
	if hasThumbnail {
		thumb, err := s.media.Upload(ctx, MediaKindThumbnail, *input.Thumbnail)
		if err != nil {
			s.log.WithContext(ctx).Errorf("upload thumbnail failed: video=%s err=%v", input.VideoID, err)
			return nil, mediaError("upload thumbnail", err)
		}
		undo.add("delete uploaded thumbnail", func(ctx context.Context) error {
			return s.media.Delete(ctx, MediaKindThumbnail, thumb.StorageID)
		})
		repoInput.ThumbnailURL = &thumb.URL
		repoInput.ThumbnailStorageID = &thumb.StorageID
	}

	updated, err := s.videos.UpdateDetails(ctx, nil, repoInput)
	if err != nil {
		for _, cerr := range undo.run(ctx) {
			s.log.WithContext(ctx).Errorf("update video compensation failed: video=%s err=%v", input.VideoID, cerr)
		}
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("update video", err)
	}

	if hasThumbnail && current.ThumbnailStorageID != "" && current.ThumbnailStorageID != updated.ThumbnailStorageID {
		if err := s.media.Delete(ctx, MediaKindThumbnail, current.ThumbnailStorageID); err != nil {
			s.log.WithContext(ctx).Warnf("delete old thumbnail failed: video=%s storage_id=%s err=%v", input.VideoID, current.ThumbnailStorageID, err)
		}
	}
	return vo.NewVideoSummary(&po.VideoWithOwner{Video: *updated, Owner: po.OwnerSummary{ID: updated.OwnerID}}), nil
}

// TogglePublishStatus 原子翻转发布状态。
func (s *VideoCommandService) TogglePublishStatus(ctx context.Context, videoID, actorID uuid.UUID) (*vo.PublishStatus, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "videoId"); err != nil {
		return nil, err
	}
	if _, err := s.loadOwned(ctx, videoID, actorID); err != nil {
		return nil, err
	}
	published, err := s.videos.TogglePublish(ctx, nil, videoID, actorID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("toggle publish", err)
	}
	s.log.WithContext(ctx).Infof("TogglePublishStatus: video=%s published=%t", videoID, published)
	return &vo.PublishStatus{VideoID: videoID, IsPublished: published}, nil
}

// DeleteVideo 在事务内删除视频行并写入删除事件，随后尽力清理关联数据。
// 清理失败不作为错误返回，而是记录在结果中，由消费删除事件的清扫任务补齐。
func (s *VideoCommandService) DeleteVideo(ctx context.Context, videoID, actorID uuid.UUID) (*vo.VideoDeleted, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "videoId"); err != nil {
		return nil, err
	}
	if _, err := s.loadOwned(ctx, videoID, actorID); err != nil {
		return nil, err
	}

	var deleted *po.Video
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		video, repoErr := s.videos.Delete(txCtx, sess, videoID, actorID)
		if repoErr != nil {
			return repoErr
		}
		evt, buildErr := outboxevents.NewVideoDeletedEvent(video, uuid.New(), time.Now().UTC())
		if buildErr != nil {
			return buildErr
		}
		if err := s.enqueue(txCtx, sess, evt); err != nil {
			return err
		}
		deleted = video
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		s.log.WithContext(ctx).Errorf("delete video failed: video=%s err=%v", videoID, err)
		return nil, storageError("delete video", err)
	}

	result := &vo.VideoDeleted{VideoID: videoID, CascadeErrors: []string{}}
	if s.cascade != nil {
		report := s.cascade.Sweep(ctx, nil, CascadeTarget{
			VideoID:            deleted.ID,
			VideoStorageID:     deleted.VideoStorageID,
			ThumbnailStorageID: deleted.ThumbnailStorageID,
		})
		result.CascadeErrors = report.StepNames()
	}
	s.log.WithContext(ctx).Infof("DeleteVideo: video=%s cascade_failures=%d", videoID, len(result.CascadeErrors))
	return result, nil
}

// loadOwned 读取视频并执行归属判定。
func (s *VideoCommandService) loadOwned(ctx context.Context, videoID, actorID uuid.UUID) (*po.Video, error) {
	video, err := s.videos.Get(ctx, nil, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, storageError("get video", err)
	}
	if err := authorizeOwner(video.OwnerID, actorID); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoCommandService) enqueue(ctx context.Context, sess txmanager.Session, evt *outboxevents.DomainEvent) error {
	if s.outbox == nil {
		return nil
	}
	err := s.outbox.EnqueueEvent(ctx, sess, evt)
	recordEventEnqueue(ctx, evt.Kind.String(), evt.OccurredAt, err)
	return err
}

func eventTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

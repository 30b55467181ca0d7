package services

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// CascadeTarget 描述已删除视频的残留清理范围。
type CascadeTarget struct {
	VideoID            uuid.UUID
	VideoStorageID     string
	ThumbnailStorageID string
}

// CascadeReport 汇总一次清理的影响行数与失败项。
type CascadeReport struct {
	CommentLikesRemoved int64
	LikesRemoved        int64
	CommentsRemoved     int64
	PlaylistsTouched    int64
	// FailedSteps 只记录失败步骤名，可直接返回给调用方；具体原因见 Errors 与日志。
	FailedSteps []string
	Errors      []error
}

// Failed 表示本次清理存在失败步骤。
func (r CascadeReport) Failed() bool {
	return len(r.Errors) > 0
}

// StepNames 返回失败步骤名的副本，从不为 nil。
func (r CascadeReport) StepNames() []string {
	return append(make([]string, 0, len(r.FailedSteps)), r.FailedSteps...)
}

func (r *CascadeReport) fail(step string, err error) {
	r.FailedSteps = append(r.FailedSteps, step)
	r.Errors = append(r.Errors, fmt.Errorf("%s: %w", step, err))
}

// CascadeService 清理视频删除后的关联数据。每一步都是幂等的，重复执行安全。
// 删除接口以尽力而为方式调用，后台清扫任务消费删除事件后再次调用以补齐。
type CascadeService struct {
	likes     LikeRepository
	comments  CommentRepository
	playlists PlaylistRepository
	media     MediaStore
	log       *log.Helper
}

// NewCascadeService 构造 CascadeService。media 为 nil 时跳过媒体对象删除。
func NewCascadeService(likes LikeRepository, comments CommentRepository, playlists PlaylistRepository, media MediaStore, logger log.Logger) *CascadeService {
	return &CascadeService{
		likes:     likes,
		comments:  comments,
		playlists: playlists,
		media:     media,
		log:       log.NewHelper(logger),
	}
}

// Sweep 依次删除评论上的点赞、视频点赞、评论、播放列表成员与媒体对象。
// 某一步失败不会中断后续步骤，失败项记录在报告中。
func (s *CascadeService) Sweep(ctx context.Context, sess txmanager.Session, target CascadeTarget) CascadeReport {
	var report CascadeReport
	videoID := target.VideoID

	step := func(name string, fn func() (int64, error), dst *int64) {
		n, err := fn()
		if err != nil {
			s.log.WithContext(ctx).Warnf("cascade %s failed: video=%s err=%v", name, videoID, err)
			report.fail(name, err)
			return
		}
		*dst = n
	}

	// 评论点赞依赖评论行定位，必须先于评论删除。
	step("delete comment likes", func() (int64, error) {
		return s.likes.DeleteForVideoComments(ctx, sess, videoID)
	}, &report.CommentLikesRemoved)
	step("delete video likes", func() (int64, error) {
		return s.likes.DeleteByVideo(ctx, sess, videoID)
	}, &report.LikesRemoved)
	step("delete comments", func() (int64, error) {
		return s.comments.DeleteByVideo(ctx, sess, videoID)
	}, &report.CommentsRemoved)
	step("remove playlist memberships", func() (int64, error) {
		return s.playlists.RemoveVideoEverywhere(ctx, sess, videoID)
	}, &report.PlaylistsTouched)

	if s.media != nil {
		s.deleteMedia(ctx, MediaKindVideo, target.VideoStorageID, &report)
		s.deleteMedia(ctx, MediaKindThumbnail, target.ThumbnailStorageID, &report)
	}

	s.log.WithContext(ctx).Infof("cascade sweep: video=%s comment_likes=%d likes=%d comments=%d playlists=%d failures=%d",
		videoID, report.CommentLikesRemoved, report.LikesRemoved, report.CommentsRemoved, report.PlaylistsTouched, len(report.Errors))
	return report
}

func (s *CascadeService) deleteMedia(ctx context.Context, kind MediaKind, storageID string, report *CascadeReport) {
	if storageID == "" {
		return
	}
	if err := s.media.Delete(ctx, kind, storageID); err != nil {
		s.log.WithContext(ctx).Warnf("cascade delete %s object failed: storage_id=%s err=%v", kind, storageID, err)
		report.fail(fmt.Sprintf("delete %s object", kind), err)
	}
}

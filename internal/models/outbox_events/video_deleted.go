package outboxevents

import (
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/google/uuid"
)

// NewVideoDeletedEvent 基于删除的实体构建领域事件。
// 载荷携带媒体存储标识，供清扫任务补删残留对象。
func NewVideoDeletedEvent(video *po.Video, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
	if video == nil {
		return nil, ErrNilVideo
	}
	if eventID == uuid.Nil {
		return nil, ErrInvalidEventID
	}

	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	occurredAt = occurredAt.UTC()

	return &DomainEvent{
		EventID:       eventID,
		Kind:          KindVideoDeleted,
		AggregateID:   video.ID,
		AggregateType: AggregateTypeVideo,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload: &VideoDeleted{
			VideoID:            video.ID,
			OwnerID:            video.OwnerID,
			Title:              video.Title,
			VideoStorageID:     video.VideoStorageID,
			ThumbnailStorageID: video.ThumbnailStorageID,
			DeletedAt:          occurredAt,
		},
	}, nil
}

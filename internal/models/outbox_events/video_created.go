package outboxevents

import (
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/google/uuid"
)

// NewVideoCreatedEvent 基于新建的视频实体构建领域事件。
func NewVideoCreatedEvent(video *po.Video, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
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
		Kind:          KindVideoCreated,
		AggregateID:   video.ID,
		AggregateType: AggregateTypeVideo,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload: &VideoCreated{
			VideoID:     video.ID,
			OwnerID:     video.OwnerID,
			Title:       video.Title,
			IsPublished: video.IsPublished,
		},
	}, nil
}

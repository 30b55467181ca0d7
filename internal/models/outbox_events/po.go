package outboxevents

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind 标识领域事件类型。
type Kind int

// 领域事件类型常量。
const (
	// KindUnknown 表示未识别的事件类型。
	KindUnknown Kind = iota
	// KindVideoCreated 表示视频发布成功。
	KindVideoCreated
	// KindVideoDeleted 表示视频已被作者删除。
	KindVideoDeleted
)

func (k Kind) String() string {
	switch k {
	case KindVideoCreated:
		return "media.video.created"
	case KindVideoDeleted:
		return "media.video.deleted"
	default:
		return "media.event.unknown"
	}
}

// ParseKind 将事件类型字符串解析为 Kind。
func ParseKind(s string) Kind {
	switch s {
	case KindVideoCreated.String():
		return KindVideoCreated
	case KindVideoDeleted.String():
		return KindVideoDeleted
	default:
		return KindUnknown
	}
}

// DomainEvent 表示领域层生成的标准事件。
type DomainEvent struct {
	EventID       uuid.UUID
	Kind          Kind
	AggregateID   uuid.UUID
	AggregateType string
	Version       int64
	OccurredAt    time.Time
	Payload       any
}

// VideoCreated 描述视频创建事件载荷。
type VideoCreated struct {
	VideoID     uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	IsPublished bool
}

// VideoDeleted 描述视频删除事件载荷。
type VideoDeleted struct {
	VideoID            uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	VideoStorageID     string
	ThumbnailStorageID string
	DeletedAt          time.Time
}

const (
	// AggregateTypeVideo 标识视频聚合类型。
	AggregateTypeVideo = "media.video"
	// SchemaVersionV1 描述事件载荷的当前 schema 版本。
	SchemaVersionV1 = "v1"
)

var (
	// ErrNilVideo 表示构造事件时视频实体为空。
	ErrNilVideo = errors.New("event builder: video is nil")
	// ErrInvalidEventID 表示未提供合法的事件 ID。
	ErrInvalidEventID = errors.New("event builder: event id is required")
	// ErrUnknownEventKind 表示未识别的事件类型。
	ErrUnknownEventKind = errors.New("event builder: unknown event kind")
	// ErrMalformedPayload 表示事件载荷无法解析。
	ErrMalformedPayload = errors.New("event decoder: malformed payload")
)

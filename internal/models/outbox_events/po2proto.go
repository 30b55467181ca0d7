package outboxevents

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProto 将领域事件转换为 protobuf Struct 载荷。
// 字段统一使用 snake_case，与 JSON 回退格式保持一致。
func ToProto(evt *DomainEvent) (*structpb.Struct, error) {
	if evt == nil {
		return nil, fmt.Errorf("events: nil domain event")
	}

	fields := map[string]any{
		"event_id":       evt.EventID.String(),
		"event_type":     evt.Kind.String(),
		"aggregate_id":   evt.AggregateID.String(),
		"aggregate_type": evt.AggregateType,
		"version":        float64(evt.Version),
		"occurred_at":    evt.OccurredAt.UTC().Format(time.RFC3339Nano),
	}

	switch payload := evt.Payload.(type) {
	case *VideoCreated:
		fields["video_id"] = payload.VideoID.String()
		fields["owner_id"] = payload.OwnerID.String()
		fields["title"] = payload.Title
		fields["is_published"] = payload.IsPublished
	case *VideoDeleted:
		fields["video_id"] = payload.VideoID.String()
		fields["owner_id"] = payload.OwnerID.String()
		fields["title"] = payload.Title
		fields["video_storage_id"] = payload.VideoStorageID
		fields["thumbnail_storage_id"] = payload.ThumbnailStorageID
		fields["deleted_at"] = payload.DeletedAt.UTC().Format(time.RFC3339Nano)
	default:
		return nil, fmt.Errorf("events: unsupported payload type %T", payload)
	}

	return structpb.NewStruct(fields)
}

// Marshal 将领域事件编码为 outbox 载荷字节。
func Marshal(evt *DomainEvent) ([]byte, error) {
	msg, err := ToProto(evt)
	if err != nil {
		return nil, err
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload: %w", err)
	}
	return data, nil
}

// VideoDeletedMessage 是消费端解码后的删除事件。
type VideoDeletedMessage struct {
	EventID    uuid.UUID
	OccurredAt time.Time
	Version    int64
	Payload    VideoDeleted
	eventType  string
}

// EventType 返回载荷中声明的事件类型。
func (m *VideoDeletedMessage) EventType() string {
	return m.eventType
}

// DecodeVideoDeleted 解码删除事件；优先按 protobuf Struct 解析，失败后回退 JSON。
func DecodeVideoDeleted(data []byte) (*VideoDeletedMessage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedPayload)
	}
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}

	eventType := stringField(fields, "event_type")
	if eventType != "" && ParseKind(eventType) != KindVideoDeleted {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventKind, eventType)
	}

	videoID, err := uuid.Parse(stringField(fields, "video_id"))
	if err != nil {
		return nil, fmt.Errorf("%w: video_id: %v", ErrMalformedPayload, err)
	}
	msg := &VideoDeletedMessage{
		eventType: eventType,
		Payload: VideoDeleted{
			VideoID:            videoID,
			Title:              stringField(fields, "title"),
			VideoStorageID:     stringField(fields, "video_storage_id"),
			ThumbnailStorageID: stringField(fields, "thumbnail_storage_id"),
		},
	}
	if id, parseErr := uuid.Parse(stringField(fields, "event_id")); parseErr == nil {
		msg.EventID = id
	}
	if id, parseErr := uuid.Parse(stringField(fields, "owner_id")); parseErr == nil {
		msg.Payload.OwnerID = id
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, stringField(fields, "occurred_at")); parseErr == nil {
		msg.OccurredAt = ts
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, stringField(fields, "deleted_at")); parseErr == nil {
		msg.Payload.DeletedAt = ts
	}
	if v, ok := fields["version"].(float64); ok {
		msg.Version = int64(v)
	}
	return msg, nil
}

func decodeFields(data []byte) (map[string]any, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err == nil && len(st.GetFields()) > 0 {
		return st.AsMap(), nil
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return fields, nil
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

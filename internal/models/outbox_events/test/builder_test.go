package outboxevents_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-engagement/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewVideoCreatedEvent(t *testing.T) {
	now := time.Date(2025, 10, 24, 12, 0, 0, 0, time.UTC)
	video := &po.Video{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Test",
		IsPublished: true,
	}
	evtID := uuid.New()

	evt, err := outboxevents.NewVideoCreatedEvent(video, evtID, now)
	require.NoError(t, err)
	require.Equal(t, outboxevents.KindVideoCreated, evt.Kind)
	require.Equal(t, video.ID, evt.AggregateID)
	require.Equal(t, outboxevents.AggregateTypeVideo, evt.AggregateType)
	require.True(t, evt.OccurredAt.Equal(now))
	require.NotZero(t, evt.Version)

	payload, ok := evt.Payload.(*outboxevents.VideoCreated)
	require.True(t, ok, "payload type mismatch: %T", evt.Payload)
	require.Equal(t, video.Title, payload.Title)

	pb, err := outboxevents.ToProto(evt)
	require.NoError(t, err)
	require.Equal(t, video.Title, pb.GetFields()["title"].GetStringValue())
	require.Equal(t, "media.video.created", pb.GetFields()["event_type"].GetStringValue())
}

func TestNewVideoEvent_InvalidInput(t *testing.T) {
	_, err := outboxevents.NewVideoCreatedEvent(nil, uuid.New(), time.Now())
	require.True(t, errors.Is(err, outboxevents.ErrNilVideo))

	_, err = outboxevents.NewVideoDeletedEvent(&po.Video{ID: uuid.New()}, uuid.Nil, time.Now())
	require.True(t, errors.Is(err, outboxevents.ErrInvalidEventID))
}

func TestVideoDeletedRoundTrip(t *testing.T) {
	video := &po.Video{
		ID:                 uuid.New(),
		OwnerID:            uuid.New(),
		Title:              "bye",
		VideoStorageID:     "videos/abc.mp4",
		ThumbnailStorageID: "thumbnails/abc.png",
	}
	evt, err := outboxevents.NewVideoDeletedEvent(video, uuid.New(), time.Now())
	require.NoError(t, err)

	data, err := outboxevents.Marshal(evt)
	require.NoError(t, err)

	decoded, err := outboxevents.DecodeVideoDeleted(data)
	require.NoError(t, err)
	require.Equal(t, evt.EventID, decoded.EventID)
	require.Equal(t, video.ID, decoded.Payload.VideoID)
	require.Equal(t, video.OwnerID, decoded.Payload.OwnerID)
	require.Equal(t, video.VideoStorageID, decoded.Payload.VideoStorageID)
	require.Equal(t, "media.video.deleted", decoded.EventType())
	require.Equal(t, evt.Version, decoded.Version)
}

func TestDecodeVideoDeleted_JSONFallback(t *testing.T) {
	videoID := uuid.New()
	data, err := json.Marshal(map[string]any{
		"event_type": "media.video.deleted",
		"video_id":   videoID.String(),
	})
	require.NoError(t, err)

	decoded, err := outboxevents.DecodeVideoDeleted(data)
	require.NoError(t, err)
	require.Equal(t, videoID, decoded.Payload.VideoID)
}

func TestDecodeVideoDeleted_Rejects(t *testing.T) {
	_, err := outboxevents.DecodeVideoDeleted(nil)
	require.ErrorIs(t, err, outboxevents.ErrMalformedPayload)

	_, err = outboxevents.DecodeVideoDeleted([]byte("not-json"))
	require.ErrorIs(t, err, outboxevents.ErrMalformedPayload)

	wrongKind, _ := json.Marshal(map[string]any{"event_type": "media.video.created", "video_id": uuid.NewString()})
	_, err = outboxevents.DecodeVideoDeleted(wrongKind)
	require.ErrorIs(t, err, outboxevents.ErrUnknownEventKind)

	noID, _ := json.Marshal(map[string]any{"event_type": "media.video.deleted"})
	_, err = outboxevents.DecodeVideoDeleted(noID)
	require.ErrorIs(t, err, outboxevents.ErrMalformedPayload)
}

func TestBuildAttributes(t *testing.T) {
	evt := &outboxevents.DomainEvent{
		EventID:       uuid.New(),
		Kind:          outboxevents.KindVideoDeleted,
		AggregateID:   uuid.New(),
		AggregateType: outboxevents.AggregateTypeVideo,
		Version:       42,
		OccurredAt:    time.Now(),
	}
	attrs := outboxevents.BuildAttributes(evt, "", "trace-1")
	require.Equal(t, "v1", attrs["schema_version"])
	require.Equal(t, "42", attrs["version"])
	require.Equal(t, "trace-1", attrs["trace_id"])
	require.Equal(t, "media", attrs["producer"])
}

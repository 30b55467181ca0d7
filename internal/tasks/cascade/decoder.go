// Package cascade 消费视频删除事件，通过 Inbox 去重后重放级联清理，
// 补齐 HTTP 删除路径上尽力而为的清理留下的缺口。
package cascade

import (
	outboxevents "github.com/bionicotaku/lingo-services-engagement/internal/models/outbox_events"
)

// Event 是清扫任务处理的消息类型。
type Event = outboxevents.VideoDeletedMessage

// eventDecoder 支持 protobuf Struct 与 JSON 的双模解码。
type eventDecoder struct{}

func newEventDecoder() *eventDecoder {
	return &eventDecoder{}
}

// Decode 实现 inbox.Decoder。
func (d *eventDecoder) Decode(data []byte) (*Event, error) {
	return outboxevents.DecodeVideoDeleted(data)
}

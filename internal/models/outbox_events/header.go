// Package outboxevents 定义 media 服务的领域事件，并提供 Outbox/Pub/Sub
// 所需的附加属性（attributes）与编解码工具。
package outboxevents

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ProducerName 标识事件生产方，写入 attributes 供订阅方过滤。
const ProducerName = "media"

// 载荷编码方式。
const (
	ContentTypeProtoStruct = "application/x-protobuf; message=google.protobuf.Struct"
)

// BuildAttributes 构造符合 Pub/Sub 约定的 message attributes。
func BuildAttributes(event *DomainEvent, schemaVersion string, traceID string) map[string]string {
	if schemaVersion == "" {
		schemaVersion = SchemaVersionV1
	}
	attrs := map[string]string{
		"event_id":       event.EventID.String(),
		"event_type":     event.Kind.String(),
		"aggregate_id":   event.AggregateID.String(),
		"aggregate_type": event.AggregateType,
		"version":        strconv.FormatInt(event.Version, 10),
		"occurred_at":    event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"schema_version": schemaVersion,
		"producer":       ProducerName,
		"content_type":   ContentTypeProtoStruct,
	}
	if traceID != "" {
		attrs["trace_id"] = traceID
	}
	return attrs
}

// TraceIDFromContext 提取 OTel Trace ID，若不存在返回空字符串。
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() || !spanCtx.HasTraceID() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// VersionFromTime 根据时间戳计算聚合版本号，采用 UTC 微秒时间。
func VersionFromTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMicro()
}

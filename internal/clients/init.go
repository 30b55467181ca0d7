// Package clients 封装与外部服务的交互客户端。
// 目前包含 MinIO 媒体存储，实现 services.MediaStore。
package clients

import (
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/google/wire"
)

// ProviderSet 暴露 Clients 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	NewMinioClient,
	NewMediaStore,
	wire.Bind(new(services.MediaStore), new(*MediaStore)),
)

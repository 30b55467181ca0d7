// Package controllers 提供 HTTP 传输层 Handler，负责身份解析、参数校验、
// DTO 转换与统一响应信封，业务逻辑全部委托给 services 层。
package controllers

import "github.com/google/wire"

// ProviderSet exposes controller/handler constructors for DI.
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewVideoHandler,
	NewCommentHandler,
	NewLikeHandler,
	NewTweetHandler,
	NewPlaylistHandler,
	NewHandlers,
)

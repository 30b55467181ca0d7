package controllers

import (
	"context"
	"time"

	metadata "github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// HandlerType 表示 Handler 的语义类别，用于选择超时策略。
type HandlerType int

const (
	// HandlerTypeDefault 表示未显式区分的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeCommand 表示写模型命令 Handler。
	HandlerTypeCommand
	// HandlerTypeQuery 表示读模型查询 Handler。
	HandlerTypeQuery
)

// HandlerTimeouts 聚合不同类型 Handler 的超时策略。
type HandlerTimeouts struct {
	Default time.Duration
	Command time.Duration
	Query   time.Duration
}

const (
	fallbackDefaultTimeout = 5 * time.Second
	fallbackQueryTimeout   = 3 * time.Second
)

// BaseHandler 提供公共的超时、Metadata 解析能力，供具体 Handler 内嵌复用。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造基础 Handler，并为缺省值填充合理的回退策略。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Default <= 0 {
		if timeouts.Command > 0 {
			timeouts.Default = timeouts.Command
		} else if timeouts.Query > 0 {
			timeouts.Default = timeouts.Query
		} else {
			timeouts.Default = fallbackDefaultTimeout
		}
	}
	if timeouts.Command <= 0 {
		timeouts.Command = timeouts.Default
	}
	if timeouts.Query <= 0 {
		if timeouts.Default > 0 {
			timeouts.Query = timeouts.Default
		} else {
			timeouts.Query = fallbackQueryTimeout
		}
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 根据 Handler 类型包装上下文，返回绑定超时的新 Context 与取消函数。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	var timeout time.Duration
	switch kind {
	case HandlerTypeCommand:
		timeout = h.timeouts.Command
	case HandlerTypeQuery:
		timeout = h.timeouts.Query
	default:
		timeout = h.timeouts.Default
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// ExtractMetadata 从入站请求头解析身份与条件请求 Header。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) metadata.HandlerMetadata {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return metadata.HandlerMetadata{}
	}
	return metadata.Parse(tr.RequestHeader())
}

// OptionalActor 返回可选的调用者身份：缺少身份头视为匿名，身份头无法解析视为未认证。
func OptionalActor(meta metadata.HandlerMetadata) (*uuid.UUID, error) {
	actor, err := meta.Actor()
	if err != nil {
		return nil, services.ErrUnauthenticated
	}
	return actor, nil
}

// RequireActor 要求调用者已认证。
func RequireActor(meta metadata.HandlerMetadata) (uuid.UUID, error) {
	actor, err := OptionalActor(meta)
	if err != nil {
		return uuid.Nil, err
	}
	if actor == nil {
		return uuid.Nil, services.ErrUnauthenticated
	}
	return *actor, nil
}

// InjectHandlerMetadata 将解析结果注入到 Context，供后续层访问。
func InjectHandlerMetadata(ctx context.Context, meta metadata.HandlerMetadata) context.Context {
	return metadata.Inject(ctx, meta)
}

// HandlerMetadataFromContext 读取上游注入的 HandlerMetadata。
func HandlerMetadataFromContext(ctx context.Context) (metadata.HandlerMetadata, bool) {
	return metadata.FromContext(ctx)
}

// endpoint 是路由内部的业务执行函数，返回值作为响应 data。
type endpoint func(ctx context.Context, meta metadata.HandlerMetadata) (any, error)

// serve 设置 operation 后经过 Server 中间件链执行 endpoint，并以统一信封写回。
// metadata 在中间件链内部解析，保证 JWT 等中间件先于业务运行。
func (h *BaseHandler) serve(ctx khttp.Context, operation string, kind HandlerType, status int, message string, fn endpoint) error {
	khttp.SetOperation(ctx, operation)
	handler := ctx.Middleware(func(c context.Context, _ any) (any, error) {
		meta := h.ExtractMetadata(c)
		timeoutCtx, cancel := h.WithTimeout(c, kind)
		defer cancel()
		return fn(InjectHandlerMetadata(timeoutCtx, meta), meta)
	})
	out, err := handler(ctx, ctx.Request().URL.Path)
	if err != nil {
		return err
	}
	return ctx.Result(status, Success(status, message, out))
}

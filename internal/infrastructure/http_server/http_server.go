// Package httpserver 负责装配入站 HTTP Server 及其中间件栈。
// 包括：追踪、恢复、元数据传播、JWT、限流、日志中间件，统一响应信封，以及可选的 otelhttp 指标采集。
package httpserver

import (
	stdhttp "net/http"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// HealthPath 是存活探针路径，不经过业务中间件。
const HealthPath = "/healthz"

// NewHTTPServer 构造配置完整的 Kratos HTTP Server 实例。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪
// 2. recovery.Recovery() - Panic 恢复
// 3. metadata.Server() - 转发配置的 metadata 前缀
// 4. JWT（可选）
// 5. ratelimit.Server() - 限流保护
// 6. logging.Server() - 结构化日志
//
// metricsCfg.HTTPEnabled 为 true 时在最外层挂载 otelhttp Handler。
func NewHTTPServer(cfg configloader.ServerConfig, metricsCfg configloader.MetricsConfig, jwt gcjwt.ServerMiddleware, handlers *controllers.Handlers, logger log.Logger) *http.Server {
	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		metadata.Server(metadata.WithPropagatedPrefix(cfg.MetadataKeys...)),
	}
	if jwt != nil {
		mws = append(mws, middleware.Middleware(jwt))
	}
	mws = append(mws,
		ratelimit.Server(),
		logging.Server(logger),
	)

	opts := []http.ServerOption{
		http.Middleware(mws...),
		http.ErrorEncoder(controllers.NewErrorEncoder(logger)),
		http.ResponseEncoder(controllers.EncodeResponse),
	}
	if metricsCfg.HTTPEnabled {
		opts = append(opts, http.Filter(newMetricsFilter()))
	}
	if cfg.Network != "" {
		opts = append(opts, http.Network(cfg.Network))
	}
	if cfg.Address != "" {
		opts = append(opts, http.Address(cfg.Address))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, http.Timeout(cfg.Timeout))
	}

	srv := http.NewServer(opts...)
	srv.HandleFunc(HealthPath, func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	controllers.RegisterHTTPRoutes(srv, handlers.Registrars()...)
	return srv
}

// newMetricsFilter 以 otelhttp 包装整个路由，健康检查不计入指标。
func newMetricsFilter() http.FilterFunc {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return otelhttp.NewHandler(next, "media.http",
			otelhttp.WithMeterProvider(otel.GetMeterProvider()),
			otelhttp.WithFilter(func(r *stdhttp.Request) bool {
				return r.URL.Path != HealthPath
			}),
			otelhttp.WithSpanNameFormatter(func(_ string, r *stdhttp.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
}

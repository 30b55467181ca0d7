//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-engagement/internal/clients"
	"github.com/bionicotaku/lingo-services-engagement/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/bionicotaku/lingo-services-engagement/internal/tasks/cascade"
	outboxtasks "github.com/bionicotaku/lingo-services-engagement/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用，分阶段装配依赖。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析配置并派生组件配置
//  2. 基础设施: gclog → observability → gcjwt → pgxpoolx → txmanager → gcpubsub
//  3. 业务层: repositories → clients(MinIO) → services → controllers
//  4. 服务器: httpserver.ProviderSet 组装 HTTP Server
//  5. 后台任务: Outbox 发布器与级联清扫 Runner（未配置时为 nil）
//  6. 应用: newApp 创建 Kratos App
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet, // 配置加载与解析
		gclog.ProviderSet,        // 结构化日志
		gcjwt.ProviderSet,        // JWT 认证中间件
		obswire.ProviderSet,      // OpenTelemetry 追踪和指标
		pgxpoolx.ProviderSet,     // PostgreSQL 连接池
		txmanager.ProviderSet,    // 事务管理器
		gcpubsub.ProviderSet,     // Pub/Sub 发布
		repositories.ProviderSet, // 数据访问层（sqlc）
		clients.ProviderSet,      // MinIO 媒体存储
		services.ProviderSet,     // 业务逻辑层
		controllers.ProviderSet,  // 控制器层（HTTP handlers）
		httpserver.ProviderSet,   // HTTP Server
		outboxtasks.ProvideRunner,
		cascade.ProvideRunner,
		newApp, // 组装 Kratos 应用
	))
}

// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
// 依赖注入概览
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//
//   - configloader.LoadRuntimeConfig(configloader.Params) (configloader.RuntimeConfig, error)
//       解析 YAML/环境变量并执行校验，其余 Provide* 从 RuntimeConfig 派生组件配置。
//
//   - configloader.ProvideCascadeSubscriber(context.Context, MessagingConfig, gcpubsub.Dependencies)
//       基于 messaging.cascade 构造独立订阅者；未配置时返回 nil。
//
//   - clients.NewMinioClient(clients.MinioConfig) (clients.ObjectStorage, error)
//   - clients.NewMediaStore(clients.ObjectStorage, clients.MinioConfig, log.Logger) *clients.MediaStore
//       未配置 endpoint 时媒体存储处于禁用状态，上传类接口返回 503。
//
//   - services.New*Service(...)
//       仓储接口与 Service 接口均在 services.ProviderSet 中通过 wire.Bind 绑定。
//
//   - controllers.NewHandlers(...) *controllers.Handlers
//       聚合五类资源 Handler，供 httpserver 注册 /v1 路由。
//
//   - httpserver.NewHTTPServer(configloader.ServerConfig, configloader.MetricsConfig,
//                               gcjwt.ServerMiddleware, *controllers.Handlers, log.Logger) *http.Server
//
//   - outboxtasks.ProvideRunner(...) *outboxtasks.Runner
//   - cascade.ProvideRunner(...) *cascade.Runner
//       两个 Runner 在 newApp 中以 BeforeStart/AfterStop 钩子托管生命周期。

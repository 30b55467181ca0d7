//go:build wireinject
// +build wireinject

package main

import (
	"context"

	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	outboxtasks "github.com/bionicotaku/lingo-services-engagement/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

// wirePublisherTask 只装配发布所需的最小依赖：配置、日志、观测、连接池、Pub/Sub 与 Outbox 仓储。
func wirePublisherTask(context.Context, configloader.Params) (*publisherApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		gcpubsub.ProviderSet,
		repositories.NewOutboxRepository,
		outboxtasks.ProvideRunner,
		newPublisherApp,
	))
}

func newPublisherApp(_ *obswire.Component, logger log.Logger, runner *outboxtasks.Runner) *publisherApp {
	return &publisherApp{Runner: runner, Logger: logger}
}

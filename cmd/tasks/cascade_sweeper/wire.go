//go:build wireinject
// +build wireinject

package main

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-engagement/internal/clients"
	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/bionicotaku/lingo-services-engagement/internal/tasks/cascade"

	"github.com/bionicotaku/lingo-utils/gclog"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

var sweeperServiceSet = wire.NewSet(
	services.NewCascadeService,
	wire.Bind(new(services.LikeRepository), new(*repositories.LikeRepository)),
	wire.Bind(new(services.CommentRepository), new(*repositories.CommentRepository)),
	wire.Bind(new(services.PlaylistRepository), new(*repositories.PlaylistRepository)),
)

func wireSweeperTask(context.Context, configloader.Params) (*sweeperApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		repositories.ProviderSet,
		clients.ProviderSet,
		sweeperServiceSet,
		cascade.ProvideRunner,
		newSweeperApp,
	))
}

func newSweeperApp(_ *obswire.Component, logger log.Logger, runner *cascade.Runner) (*sweeperApp, error) {
	if runner == nil {
		return &sweeperApp{Logger: logger}, nil
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &sweeperApp{
		Runner: runner,
		Logger: logger,
	}, nil
}

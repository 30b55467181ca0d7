// Package main 提供级联清扫 Runner 的独立进程入口。
// 订阅 media.video.deleted 事件，清理视频删除后残留的点赞、评论与播放列表引用。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	"github.com/go-kratos/kratos/v2/log"
)

type sweeperApp struct {
	Runner sweeperRunner
	Logger log.Logger
}

type sweeperRunner interface {
	Run(context.Context) error
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	params := configloader.Params{ConfPath: *confFlag}
	app, cleanup, err := wireSweeperTask(ctx, params)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Runner == nil {
		helper.Warn("cascade sweeper disabled (missing messaging.cascade configuration)")
		return
	}

	helper.Info("starting cascade sweeper")

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Runner.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		helper.Errorf("cascade sweeper stopped unexpectedly: %v", err)
		os.Exit(1)
	}

	helper.Info("cascade sweeper stopped")
}

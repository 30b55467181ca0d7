// Package main 提供视频事件 Outbox 发布器的独立进程入口。
// 与 HTTP 进程内嵌的发布器共用同一张 outbox 表，二者通过 lock_token 抢占，不会重复投递。
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	configloader "github.com/bionicotaku/lingo-services-engagement/internal/infrastructure/configloader"
	outboxtasks "github.com/bionicotaku/lingo-services-engagement/internal/tasks/outbox"
	"github.com/go-kratos/kratos/v2/log"
)

type publisherApp struct {
	Runner *outboxtasks.Runner
	Logger log.Logger
}

func main() {
	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	flag.Parse()

	if err := run(configloader.Params{ConfPath: *confFlag}); err != nil {
		log.NewHelper(log.NewStdLogger(os.Stderr)).Errorf("outbox publisher stopped unexpectedly: %v", err)
		os.Exit(1)
	}
}

func run(params configloader.Params) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := wirePublisherTask(ctx, params)
	if err != nil {
		return err
	}
	defer cleanup()

	logger := app.Logger
	if logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	}
	helper := log.NewHelper(logger)

	if app.Runner == nil {
		helper.Warn("outbox publisher disabled (missing messaging.events configuration)")
		return nil
	}

	if err := app.Runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	helper.Info("outbox publisher stopped")
	return nil
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mia-platform/twinserve/internal/hello"
	"github.com/mia-platform/twinserve/internal/logger"
	"github.com/mia-platform/twinserve/internal/notify"
	"github.com/mia-platform/twinserve/internal/server"
	"github.com/mia-platform/twinserve/internal/site"
)

// helloOptions configures the Hello World server.
type helloOptions struct {
	server server.Config
}

// helloOptionsFromEnv builds the hello options from the environment.
func helloOptionsFromEnv(args []string) (*helloOptions, error) {
	if len(args) > 0 {
		return nil, errUnexpectedArguments
	}

	cfg, err := server.LoadServerConfig(hello.DefaultConfig)
	if err != nil {
		return nil, err
	}

	return &helloOptions{server: *cfg}, nil
}

// execute runs the Hello World server until ctx is done.
func (o *helloOptions) execute(ctx context.Context) error {
	return hello.NewServer(ctx, o.server).Run(ctx)
}

// siteOptions configures the static site server.
type siteOptions struct {
	server  server.Config
	site    site.Config
	console io.Writer
}

// execute runs the static site server until ctx is done. The site logs on the
// console and on the daily files at the level of the logger found in ctx.
func (o *siteOptions) execute(ctx context.Context) error {
	dailyFile := logger.NewDailyFile(o.site.LogsDir, o.console)
	log := logger.NewLogger(
		io.MultiWriter(o.console, dailyFile),
		logger.WithTextFormat(),
		logger.WithLevel(logger.FromContext(ctx).Level()),
	)
	ctx = logger.WithContext(ctx, log)

	bus := notify.NewBus()
	site.SubscribeLogger(bus, log)

	views := site.NewViews(os.DirFS(o.site.ViewsDir), o.site.ViewsDir)
	return site.New(views, bus).NewServer(ctx, o.server).Run(ctx)
}

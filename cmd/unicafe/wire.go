//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/unicafe/internal/bootstrap"
	"github.com/yanqian/unicafe/internal/domain/menu"
	"github.com/yanqian/unicafe/internal/infra/config"
	"github.com/yanqian/unicafe/internal/infra/unicafe"
	"github.com/yanqian/unicafe/internal/interface/cli"
	httpiface "github.com/yanqian/unicafe/internal/interface/http"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		provideClientConfig,
		unicafe.NewClient,
		wire.Bind(new(menu.Client), new(*unicafe.Client)),
		menu.NewService,
		cli.NewApp,
		wire.Bind(new(httpiface.UsageReporter), new(*unicafe.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

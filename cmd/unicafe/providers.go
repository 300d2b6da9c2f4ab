package main

import (
	"log/slog"

	"github.com/yanqian/unicafe/internal/infra/config"
	"github.com/yanqian/unicafe/internal/infra/unicafe"
	"github.com/yanqian/unicafe/pkg/logger"
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

func provideClientConfig(cfg *config.Config) unicafe.Config {
	return unicafe.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}
}

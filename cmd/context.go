package cmd

import (
	"context"

	"github.com/erincandescent/derkit/config"
	"go.uber.org/zap"
)

type ctxKey int

const (
	ctxKeyConfig ctxKey = iota
	ctxKeyLogger
)

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ctxKeyConfig, cfg)
}

func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(ctxKeyConfig).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func withLogger(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, log)
}

func getLogger(ctx context.Context) *zap.SugaredLogger {
	if log, ok := ctx.Value(ctxKeyLogger).(*zap.SugaredLogger); ok {
		return log
	}
	return zap.NewNop().Sugar()
}

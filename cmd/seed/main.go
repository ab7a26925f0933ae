package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/draft-prospects/internal/app"
	"github.com/riskibarqy/draft-prospects/internal/config"
	"github.com/riskibarqy/draft-prospects/internal/observability"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
	"github.com/riskibarqy/draft-prospects/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	runErr := app.RunPipeline(ctx, cfg, logger)
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownUptrace(shutdownCtx); err != nil {
		logger.Warn("shutdown uptrace", "error", err)
	}

	if runErr != nil {
		logger.Error("seed pipeline failed", "error", runErr)
		_ = logger.Sync()
		if errors.Is(runErr, usecase.ErrStoreUnavailable) {
			os.Exit(3)
		}
		os.Exit(1)
	}
	logger.Info("seed pipeline finished")
}

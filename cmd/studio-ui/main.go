package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fitpulse/studio-ui/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting studio-ui",
		slog.Bool("dev", cfg.IsDev),
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	redisClient, err := bootstrap.InitRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", slog.Any("error", cerr))
		}
	}()

	handler, err := bootstrap.BuildHandler(&cfg, redisClient, logger)
	if err != nil {
		return err
	}
	return bootstrap.RunServer(ctx, &cfg, handler, logger)
}

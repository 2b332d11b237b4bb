package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-parser/config"
	"voice-task-parser/internal/bootstrap"
	"voice-task-parser/internal/httpserver"
	"voice-task-parser/pkg/log"
)

// @title       Voice Task Parser API
// @description Turns spoken task utterances and filter queries into structured records.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Reference zone: %s (UTC%+d min)", cfg.Extractor.ZoneName, cfg.Extractor.UTCOffsetMinutes)

	// 3. Voice domain
	v, err := bootstrap.NewVoice(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize voice domain: ", err)
		return
	}
	defer func() {
		if err := v.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close cache: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
		VoiceUseCase:    v.UseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

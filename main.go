package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"masteryengine/config"
	qhttp "masteryengine/http"
	"masteryengine/logger"
	"masteryengine/ml"
)

func main() {
	// 1. Load config
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logr.Sync()

	// 2. Load the model before accepting connections
	model, err := ml.LoadModel(cfg.ML.ModelType, cfg.ML.ModelPath)
	if err != nil {
		logr.Fatal("failed to load model", zap.Error(err))
	}
	scorer, err := ml.NewScorer(model, cfg.ML.CacheSize)
	if err != nil {
		logr.Fatal("failed to create scorer", zap.Error(err))
	}
	logr.Info("model loaded",
		zap.String("type", cfg.ML.ModelType),
		zap.String("path", cfg.ML.ModelPath),
		zap.Int("cache_size", cfg.ML.CacheSize),
	)

	// 3. Start HTTP server
	serverConfig := qhttp.DefaultServerConfig()
	serverConfig.Port = cfg.Http.Port
	serverConfig.Timeout = cfg.Http.Timeout
	server := qhttp.NewServer(serverConfig, scorer, logr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// 4. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			logr.Fatal("HTTP server failed", zap.Error(err))
		}
		return
	case <-quit:
	}

	if err := server.Stop(); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
	logr.Info("exiting")
}

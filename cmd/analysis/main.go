package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mockview/mockview/internal/analysisserver"
	"github.com/mockview/mockview/internal/config"
	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/redis"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAnalysis()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Analysis server starting", "port", cfg.Port)

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		cancel()
		slog.Error("Redis ping failed", "error", err)
		os.Exit(1)
	}
	cancel()

	store := redis.NewScoreStore(redisClient.Underlying(), cfg.HistoryLimit, cfg.HistoryTTL)

	srv := analysisserver.NewServer(cfg, store, redisClient)

	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		close(done)
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/config"
	"github.com/zaqqye/linkbio/internal/database"
	"github.com/zaqqye/linkbio/internal/logger"
	"github.com/zaqqye/linkbio/internal/routes"
	"github.com/zaqqye/linkbio/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()

	if err := s.Init(ctx); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
	if err := database.Seed(ctx, s, cfg); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	hub := ws.NewHub()
	go hub.Run(ctx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	routes.Register(r, s, cfg, hub)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("driver", cfg.DBDriver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited with error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}

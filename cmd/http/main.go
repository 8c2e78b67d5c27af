package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/config"
	"github.com/Nomet5/cake-app-sub003/internal/app"
	"github.com/Nomet5/cake-app-sub003/internal/httpapi"
	"github.com/Nomet5/cake-app-sub003/internal/listener"
	"github.com/Nomet5/cake-app-sub003/pkg/broker"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.ZapLogger())
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer catalog.Close()

	if cfg.Kafka.Enabled && catalog.Redis != nil {
		kafkaConsumer := broker.NewConsumer(cfg.Broker())
		defer kafkaConsumer.Close()
		go listener.NewCacheListener(kafkaConsumer, catalog.Redis, appLogger).Start(ctx)
	}

	api := httpapi.NewServer(catalog.Products, catalog.Categories, catalog.Chefs, catalog.DB, httpapi.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	}, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      api.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Nomet5/cake-app-sub003/config"
	"github.com/Nomet5/cake-app-sub003/internal/app"
	"github.com/Nomet5/cake-app-sub003/internal/catalogv1"
	catH "github.com/Nomet5/cake-app-sub003/internal/category/handler"
	chefH "github.com/Nomet5/cake-app-sub003/internal/chef/handler"
	"github.com/Nomet5/cake-app-sub003/internal/listener"
	prodH "github.com/Nomet5/cake-app-sub003/internal/product/handler"
	"github.com/Nomet5/cake-app-sub003/pkg/broker"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
	"github.com/Nomet5/cake-app-sub003/pkg/middleware"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(cfg.ZapLogger())
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Connect to Database, Redis and build UseCases
	catalog, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer catalog.Close()

	// 4. Cache invalidation listener
	if cfg.Kafka.Enabled && catalog.Redis != nil {
		kafkaConsumer := broker.NewConsumer(cfg.Broker())
		defer kafkaConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

		go listener.NewCacheListener(kafkaConsumer, catalog.Redis, appLogger).Start(ctx)
	}

	// 5. Initialize Handlers
	catalogServer := catalogv1.NewServer(
		prodH.NewProductHandler(catalog.Products, appLogger),
		catH.NewCategoryHandler(catalog.Categories, appLogger),
		chefH.NewChefHandler(catalog.Chefs, appLogger),
	)

	// 6. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger)),
	)

	// Register Services
	catalogv1.RegisterCatalogServiceServer(grpcServer, catalogServer)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(catalogv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register Reflection
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

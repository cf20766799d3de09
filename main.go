// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"cinema-manager/cmd"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/event"
	"cinema-manager/internal/wire"
	"cinema-manager/pkg/database"
	"cinema-manager/pkg/telemetry"
	"cinema-manager/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	shutdownTelemetry, err := telemetry.Init(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer shutdownTelemetry(context.Background())

	if config.Database.AutoMigrate {
		if err := database.Migrate(config.Database.DSN(), logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	publisher := event.NewPublisher(config.Broker.URL, config.Broker.Queue, logger)
	defer publisher.Close()

	// Redis backs the rate limiter only
	var rdb redis.Cmdable
	if config.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis unreachable, rate limiter will let requests through", zap.Error(err))
		}
		cancel()
		rdb = client
	}

	// Wire all dependencies
	app := wire.Wiring(repos, publisher, rdb, config, logger)

	if err := app.Service.Auth.BootstrapAdmin(ctx); err != nil {
		logger.Error("Failed to bootstrap admin operator", zap.Error(err))
	}

	go cmd.CleanSessions(ctx, app.Service.Auth, time.Hour, logger)

	// Start server
	if err := cmd.APIServer(ctx, app.Router, config, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/config"
	"github.com/venue-reservation-service/internal/infrastructure/mailer"
	"github.com/venue-reservation-service/internal/pkg/logger"
	"github.com/venue-reservation-service/internal/repository/cache"
	"github.com/venue-reservation-service/internal/repository/postgres"
	redisRepo "github.com/venue-reservation-service/internal/repository/redis"
	"github.com/venue-reservation-service/internal/usecase"
	"github.com/venue-reservation-service/internal/worker"
	"github.com/venue-reservation-service/internal/worker/reservation"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Reservation Notification Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("smtp_host", cfg.SMTP.Host))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	venueRepo := postgres.NewVenueRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	expander := postgres.NewVenueExpander(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	venueUC := usecase.NewVenueUseCase(
		venueRepo,
		locationRepo,
		expander,
		cacheRepo,
		log,
		cfg.Cache.FeaturedCacheTTL,
		cfg.Cache.LocationCacheTTL,
	)
	reservationUC := usecase.NewReservationUseCase(reservationRepo, venueRepo, streamRepo, log)

	// 7. Initialize workers
	notificationWorker := reservation.NewNotificationWorker(
		streamRepo,
		reservationUC,
		venueUC,
		mailer.NewMailer(&cfg.SMTP, log),
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewManager(log)
	workerManager.Register(notificationWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()

	if err := workerManager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}

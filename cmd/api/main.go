package main

// @title Venue Reservation Service API
// @version 1.0.0
// @description Бэкенд площадок для мероприятий: салоны (salones) и бронирования (reservas).
// @description
// @description Основные возможности:
// @description - Фильтрация салонов по городу/департаменту, тегам, цене и вместимости
// @description - Поиск салонов по названию города или департамента
// @description - Избранные салоны главного баннера и баннера локации
// @description - CRUD и активация/деактивация салонов и бронирований

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/venue-reservation-service/docs"
	"github.com/venue-reservation-service/internal/config"
	httpDelivery "github.com/venue-reservation-service/internal/delivery/http"
	"github.com/venue-reservation-service/internal/delivery/http/handler"
	"github.com/venue-reservation-service/internal/pkg/logger"
	"github.com/venue-reservation-service/internal/repository/cache"
	"github.com/venue-reservation-service/internal/repository/postgres"
	redisRepo "github.com/venue-reservation-service/internal/repository/redis"
	"github.com/venue-reservation-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Venue Reservation Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	venueRepo := postgres.NewVenueRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	expander := postgres.NewVenueExpander(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	venueUC := usecase.NewVenueUseCase(
		venueRepo,
		locationRepo,
		expander,
		cacheRepo,
		log,
		cfg.Cache.FeaturedCacheTTL,
		cfg.Cache.LocationCacheTTL,
	)

	reservationUC := usecase.NewReservationUseCase(
		reservationRepo,
		venueRepo,
		streamRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	venueHandler := handler.NewVenueHandler(venueUC, log)
	reservationHandler := handler.NewReservationHandler(reservationUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		venueHandler,
		reservationHandler,
		map[string]httpDelivery.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		},
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

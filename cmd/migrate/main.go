package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/config"
	"github.com/venue-reservation-service/internal/pkg/logger"
	"github.com/venue-reservation-service/internal/repository/postgres"
)

const usage = "Usage: migrate [up|down N|version]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dbURL := cfg.GetDatabaseURL()
	path := cfg.Database.MigrationsPath

	switch os.Args[1] {
	case "up":
		if err := postgres.MigrateUp(dbURL, path); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
		log.Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				log.Fatal("Invalid step count", zap.String("steps", os.Args[2]))
			}
		}
		if err := postgres.MigrateDown(dbURL, path, steps); err != nil {
			log.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		log.Info("Migrations rolled back", zap.Int("steps", steps))

	case "version":
		version, dirty, err := postgres.MigrationVersion(dbURL, path)
		if err != nil {
			log.Fatal("Failed to read migration version", zap.Error(err))
		}
		log.Info("Migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

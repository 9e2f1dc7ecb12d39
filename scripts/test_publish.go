//go:build ignore

// Публикует тестовое событие reservation:created для проверки воркера уведомлений.
//
//	go run scripts/test_publish.go -reservation <id> -venue <id>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/venue-reservation-service/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	reservationID := flag.String("reservation", "", "reservation id (required)")
	venueID := flag.String("venue", "", "venue id (required)")
	flag.Parse()

	if *reservationID == "" || *venueID == "" {
		flag.Usage()
		log.Fatal("-reservation and -venue are required")
	}

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.ReservationCreatedEvent{
		ReservationID: *reservationID,
		VenueID:       *venueID,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamReservationCreated,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published %s to %s\n", result, domain.StreamReservationCreated)
}

package repository

import (
	"context"

	"github.com/venue-reservation-service/internal/domain"
)

// StreamRepository - события бронирований в Redis Streams
type StreamRepository interface {
	// ConsumeBatch читает до maxCount новых сообщений группы
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int64) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// CreateConsumerGroup создаёт consumer group (идемпотентно)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует событие как JSON
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

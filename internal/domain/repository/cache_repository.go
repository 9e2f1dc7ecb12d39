package repository

import (
	"context"
	"time"

	"github.com/venue-reservation-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах возвращает nil, nil
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значения из кеша
	Delete(ctx context.Context, keys ...string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetFeatured получает развёрнутый список избранных салонов
	GetFeatured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.VenueDetail, error)

	// SetFeatured сохраняет список избранных салонов
	SetFeatured(ctx context.Context, scope domain.FeaturedScope, venues []*domain.VenueDetail, ttl time.Duration) error

	// InvalidateFeatured удаляет оба списка избранных салонов
	InvalidateFeatured(ctx context.Context) error

	// GetLocation получает закешированное разрешение локации. found=false - промах
	GetLocation(ctx context.Context, text string) (cityIDs []string, found bool, err error)

	// SetLocation сохраняет разрешение локации (в том числе пустое)
	SetLocation(ctx context.Context, text string, cityIDs []string, ttl time.Duration) error
}

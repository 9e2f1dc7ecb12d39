package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	featuredKeyPrefix = "venues:featured:"
	locationKeyPrefix = "location:resolve:"
)

// FeaturedKey returns the cache key of a featured listing.
func FeaturedKey(scope domain.FeaturedScope) string {
	return featuredKeyPrefix + string(scope)
}

// LocationKey returns the cache key of a location resolution.
func LocationKey(text string) string {
	return locationKeyPrefix + text
}

type cacheRepository struct {
	client redis.Cmdable
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// NewCacheRepositoryWithClient builds a repository over any go-redis client.
func NewCacheRepositoryWithClient(client redis.Cmdable, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.Strings("keys", keys), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.Strings("keys", keys))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetFeatured получает список избранных салонов из кеша
func (r *cacheRepository) GetFeatured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.VenueDetail, error) {
	data, err := r.Get(ctx, FeaturedKey(scope))
	if err != nil || data == nil {
		return nil, err
	}

	var venues []*domain.VenueDetail
	if err := json.Unmarshal(data, &venues); err != nil {
		r.logger.Error("Failed to unmarshal featured venues from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal featured venues: %w", err)
	}

	return venues, nil
}

// SetFeatured сохраняет список избранных салонов в кеше
func (r *cacheRepository) SetFeatured(ctx context.Context, scope domain.FeaturedScope, venues []*domain.VenueDetail, ttl time.Duration) error {
	data, err := json.Marshal(venues)
	if err != nil {
		r.logger.Error("Failed to marshal featured venues", zap.Error(err))
		return fmt.Errorf("marshal featured venues: %w", err)
	}

	return r.Set(ctx, FeaturedKey(scope), data, ttl)
}

func (r *cacheRepository) InvalidateFeatured(ctx context.Context) error {
	return r.Delete(ctx, FeaturedKey(domain.FeaturedGlobal), FeaturedKey(domain.FeaturedLocation))
}

// GetLocation получает разрешение локации из кеша
func (r *cacheRepository) GetLocation(ctx context.Context, text string) ([]string, bool, error) {
	data, err := r.Get(ctx, LocationKey(text))
	if err != nil || data == nil {
		return nil, false, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		r.logger.Error("Failed to unmarshal location from cache", zap.String("text", text), zap.Error(err))
		return nil, false, fmt.Errorf("unmarshal location: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, true, nil
}

// SetLocation сохраняет разрешение локации в кеше
func (r *cacheRepository) SetLocation(ctx context.Context, text string, cityIDs []string, ttl time.Duration) error {
	if cityIDs == nil {
		cityIDs = []string{}
	}
	data, err := json.Marshal(cityIDs)
	if err != nil {
		return fmt.Errorf("marshal location: %w", err)
	}

	return r.Set(ctx, LocationKey(text), data, ttl)
}

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx,
		cache.FeaturedKey(domain.FeaturedGlobal),
		cache.FeaturedKey(domain.FeaturedLocation),
		cache.LocationKey("Nowhere"),
		cache.LocationKey("Santander"),
	)

	return client
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "venues:featured:global", cache.FeaturedKey(domain.FeaturedGlobal))
	assert.Equal(t, "venues:featured:location", cache.FeaturedKey(domain.FeaturedLocation))
	assert.Equal(t, "location:resolve:Bucaramanga", cache.LocationKey("Bucaramanga"))
}

func TestCacheRepository_Featured(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()

	// miss
	venues, err := repo.GetFeatured(ctx, domain.FeaturedGlobal)
	require.NoError(t, err)
	assert.Nil(t, venues)

	pos := 1
	want := []*domain.VenueDetail{{
		ID:              "v1",
		VenueAttributes: domain.VenueAttributes{Name: "Salon Real", BannerPosition: &pos},
	}}
	require.NoError(t, repo.SetFeatured(ctx, domain.FeaturedGlobal, want, time.Minute))
	require.NoError(t, repo.SetFeatured(ctx, domain.FeaturedLocation, want, time.Minute))

	got, err := repo.GetFeatured(ctx, domain.FeaturedGlobal)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salon Real", got[0].Name)
	assert.Equal(t, 1, *got[0].BannerPosition)

	require.NoError(t, repo.InvalidateFeatured(ctx))

	for _, scope := range []domain.FeaturedScope{domain.FeaturedGlobal, domain.FeaturedLocation} {
		exists, err := repo.Exists(ctx, cache.FeaturedKey(scope))
		require.NoError(t, err)
		assert.False(t, exists, "featured list %s must be invalidated", scope)
	}
}

func TestCacheRepository_Location(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()

	_, found, err := repo.GetLocation(ctx, "Santander")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetLocation(ctx, "Santander", []string{"c1", "c2"}, time.Minute))
	ids, found, err := repo.GetLocation(ctx, "Santander")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"c1", "c2"}, ids)

	// an unresolved location is cached as an empty set, not a miss
	require.NoError(t, repo.SetLocation(ctx, "Nowhere", nil, time.Minute))
	ids, found, err = repo.GetLocation(ctx, "Nowhere")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, ids)
}

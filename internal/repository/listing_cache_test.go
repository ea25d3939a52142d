package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sundar_marbles/internal/domain/models"
	redisapp "sundar_marbles/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisListingCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisListingCache(&redisapp.Client{Client: db})

	mock.ExpectGet(CacheKeyFeaturedProducts).RedisNil()

	var dest []models.Product
	hit, err := cache.Get(context.Background(), CacheKeyFeaturedProducts, &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisListingCache_SetThenGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisListingCache(&redisapp.Client{Client: db})

	counts := []models.CategoryCount{
		{ID: uuid.MustParse("4b3c1d22-93a8-4f0e-9d3b-24a0a2e0b111"), Name: "Marble", Slug: "marble", Count: 3},
	}
	data, err := json.Marshal(counts)
	require.NoError(t, err)

	mock.ExpectSet(CacheKeyProductCategories, data, 5*time.Minute).SetVal("OK")
	mock.ExpectGet(CacheKeyProductCategories).SetVal(string(data))

	require.NoError(t, cache.Set(context.Background(), CacheKeyProductCategories, counts, 5*time.Minute))

	var dest []models.CategoryCount
	hit, err := cache.Get(context.Background(), CacheKeyProductCategories, &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, counts, dest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisListingCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisListingCache(&redisapp.Client{Client: db})

	mock.ExpectDel(CacheKeyProductCategories, CacheKeyFeaturedProducts).SetVal(2)

	err := cache.Invalidate(context.Background(), CacheKeyProductCategories, CacheKeyFeaturedProducts)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// No keys is a no-op, no command issued.
	require.NoError(t, cache.Invalidate(context.Background()))
}

func TestMemoryListingCache_RoundTrip(t *testing.T) {
	cache := NewMemoryListingCache()
	ctx := context.Background()

	images := []models.GalleryImage{
		{ID: uuid.New(), Title: "Staircase", Tags: []string{"stairs"}},
	}

	require.NoError(t, cache.Set(ctx, CacheKeyFeaturedImages, images, time.Minute))

	var dest []models.GalleryImage
	hit, err := cache.Get(ctx, CacheKeyFeaturedImages, &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, dest, 1)
	assert.Equal(t, images[0].Title, dest[0].Title)
	assert.Equal(t, images[0].Tags, dest[0].Tags)
}

func TestMemoryListingCache_MissAndInvalidate(t *testing.T) {
	cache := NewMemoryListingCache()
	ctx := context.Background()

	var dest []models.Product
	hit, err := cache.Get(ctx, CacheKeyFeaturedProducts, &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, CacheKeyFeaturedProducts, []models.Product{{Name: "Jet Black"}}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx, CacheKeyFeaturedProducts))

	hit, err = cache.Get(ctx, CacheKeyFeaturedProducts, &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

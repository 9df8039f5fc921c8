package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCacheWithoutRedis(t *testing.T) {
	cache := NewResultCache(nil)
	ctx := context.Background()

	cache.Set(ctx, "retry-1", &PipelineResult{Name: "Tomato Soup"})

	result, ok := cache.Get(ctx, "retry-1")
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestResultCacheIgnoresEmptyKey(t *testing.T) {
	cache := newLiveCache(t)
	ctx := context.Background()

	cache.Set(ctx, "", &PipelineResult{Name: "Tomato Soup"})

	result, ok := cache.Get(ctx, "")
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestReplayKeyScoping(t *testing.T) {
	req := &RecipeRequest{Ingredients: []string{"egg", "onion"}, NumPeople: 2}

	t.Run("same caller, header and payload derive the same key", func(t *testing.T) {
		a := ReplayKey("key-a", "retry-1", req)
		b := ReplayKey("key-a", "retry-1", &RecipeRequest{Ingredients: []string{"egg", "onion"}, NumPeople: 2})
		assert.NotEmpty(t, a)
		assert.Equal(t, a, b)
	})

	t.Run("different callers never share a key", func(t *testing.T) {
		a := ReplayKey("key-a", "retry-1", req)
		b := ReplayKey("key-b", "retry-1", req)
		assert.NotEqual(t, a, b)
	})

	t.Run("a reused header with a different payload is a different key", func(t *testing.T) {
		a := ReplayKey("key-a", "retry-1", req)
		b := ReplayKey("key-a", "retry-1", &RecipeRequest{Ingredients: []string{"tofu"}, NumPeople: 4})
		assert.NotEqual(t, a, b)
	})

	t.Run("a missing header is uncacheable", func(t *testing.T) {
		assert.Empty(t, ReplayKey("key-a", "", req))
	})
}

func TestResultCacheIsolatesCallers(t *testing.T) {
	cache := newLiveCache(t)
	ctx := context.Background()
	req := &RecipeRequest{Ingredients: []string{"egg", "onion"}, NumPeople: 2}

	cache.Set(ctx, ReplayKey("key-a", "retry-1", req), &PipelineResult{Name: "Tomato Soup"})

	result, ok := cache.Get(ctx, ReplayKey("key-b", "retry-1", req))
	assert.False(t, ok)
	assert.Nil(t, result)

	result, ok = cache.Get(ctx, ReplayKey("key-a", "retry-1", req))
	require.True(t, ok)
	assert.Equal(t, "Tomato Soup", result.Name)
}

func TestResultCacheRoundTrip(t *testing.T) {
	cache := newLiveCache(t)
	ctx := context.Background()

	stored := &PipelineResult{
		Name:      "Tomato Soup",
		ImageURLs: []string{"https://bucket.s3.amazonaws.com/images/soup.png"},
		Recipe:    "1. Simmer the tomatoes.",
	}
	cache.Set(ctx, "retry-1", stored)

	result, ok := cache.Get(ctx, "retry-1")
	require.True(t, ok)
	assert.Equal(t, stored, result)

	_, ok = cache.Get(ctx, "retry-2")
	assert.False(t, ok)
}

// newLiveCache connects to a real Redis when one is available and skips
// the test otherwise, so the suite runs without infrastructure.
func newLiveCache(t *testing.T) *ResultCache {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("REDIS_HOST not set; skipping Redis-backed cache test")
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return NewResultCache(client)
}

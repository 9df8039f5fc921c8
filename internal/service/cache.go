package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const resultCacheTTL = 24 * time.Hour

// ResultCache replays a completed generation result for a repeated
// Idempotency-Key, so a retried request does not pay for a second pair of
// generation calls. Cache failures are logged and treated as misses;
// the cache never fails a request.
type ResultCache struct {
	redis *redis.Client
}

// NewResultCache creates a new ResultCache instance. A nil client yields
// a cache that always misses.
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{redis: client}
}

// Get returns the cached result for the key, if any.
func (c *ResultCache) Get(ctx context.Context, key string) (*PipelineResult, bool) {
	if c == nil || c.redis == nil || key == "" {
		return nil, false
	}

	data, err := c.redis.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[ResultCache] Failed to read cached result: %v", err)
		}
		return nil, false
	}

	var result PipelineResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("[ResultCache] Failed to unmarshal cached result: %v", err)
		return nil, false
	}

	return &result, true
}

// Set stores a successful result under the key for the cache TTL.
func (c *ResultCache) Set(ctx context.Context, key string, result *PipelineResult) {
	if c == nil || c.redis == nil || key == "" {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[ResultCache] Failed to marshal result: %v", err)
		return
	}

	if err := c.redis.Set(ctx, cacheKey(key), data, resultCacheTTL).Err(); err != nil {
		log.Printf("[ResultCache] Failed to cache result: %v", err)
	}
}

func cacheKey(key string) string {
	return fmt.Sprintf("recipe:result:%s", key)
}

// ReplayKey derives the cache key for an Idempotency-Key header. The
// header value alone is not enough: it is scoped to the authenticated API
// key and to a hash of the request payload, so one subscriber can never
// read another's cached result and a reused header with different inputs
// is a miss, not a stale hit. An empty header yields an empty key, which
// the cache treats as uncacheable.
func ReplayKey(apiKey, idempotencyKey string, req *RecipeRequest) string {
	if idempotencyKey == "" {
		return ""
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}

	h := sha256.New()
	h.Write([]byte(apiKey))
	h.Write([]byte{'|'})
	h.Write([]byte(idempotencyKey))
	h.Write([]byte{'|'})
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

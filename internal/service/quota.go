package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/recipe-genie/backend/internal/models"
)

const (
	// RateLimit is the maximum number of requests per key per window.
	RateLimit = 100
	// RateLimitWindow is the fixed quota window.
	RateLimitWindow = 3600 * time.Second
)

// QuotaService enforces the per-key fixed-window quota against the
// persisted counters on the api_keys table. It is the only writer of
// those counters.
type QuotaService struct {
	db *gorm.DB
}

// NewQuotaService creates a new QuotaService instance
func NewQuotaService(db *gorm.DB) *QuotaService {
	return &QuotaService{db: db}
}

// Authorize validates the key and applies the fixed-window counter.
// A key that was last used more than a window ago starts a fresh window
// with count 1. A key at the limit inside the window is rejected without
// mutation. Every allowed call stamps last_request_time.
//
// The read and the subsequent write are not one atomic operation, so
// concurrent requests on one key can admit slightly more than the limit.
// The increment itself is pushed down to the database to keep the counter
// consistent under that race.
func (s *QuotaService) Authorize(ctx context.Context, key string) error {
	var apiKey models.APIKey
	if err := s.db.WithContext(ctx).First(&apiKey, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("failed to load API key: %w", err)
	}

	now := time.Now()
	elapsed := RateLimitWindow + time.Second
	if apiKey.LastRequestTime != nil {
		elapsed = now.Sub(*apiKey.LastRequestTime)
	}

	if elapsed > RateLimitWindow {
		// Window expired: start a fresh one.
		err := s.db.WithContext(ctx).Model(&models.APIKey{}).
			Where("key = ?", key).
			Updates(map[string]interface{}{
				"request_count":     1,
				"last_request_time": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to reset quota window: %w", err)
		}
		return nil
	}

	if apiKey.RequestCount >= RateLimit {
		return ErrRateLimited
	}

	err := s.db.WithContext(ctx).Model(&models.APIKey{}).
		Where("key = ?", key).
		Updates(map[string]interface{}{
			"request_count":     gorm.Expr("request_count + ?", 1),
			"last_request_time": now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to increment quota counter: %w", err)
	}
	return nil
}

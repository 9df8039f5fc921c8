package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipe-genie/backend/internal/models"
)

// ErrMissingSubscriptionFields is returned when the subscribe request is incomplete.
var ErrMissingSubscriptionFields = errors.New("unique ID and subscription plan are required")

// SubscriptionService creates subscription records and issues API keys.
type SubscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a new SubscriptionService instance
func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// Subscribe upserts the subscription record for uniqueID and issues a
// fresh API key with zeroed quota counters. Re-subscribing refreshes the
// plan and yields an additional key; existing keys stay valid.
func (s *SubscriptionService) Subscribe(ctx context.Context, uniqueID, plan string) (string, error) {
	if uniqueID == "" || plan == "" {
		return "", ErrMissingSubscriptionFields
	}

	user := models.User{
		ID:                 uniqueID,
		SubscriptionPlan:   plan,
		SubscriptionDate:   time.Now(),
		SubscriptionActive: true,
		SubscriptionStatus: "active",
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subscription_plan", "subscription_date",
			"subscription_active", "subscription_status", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return "", fmt.Errorf("failed to save subscription: %w", err)
	}

	apiKey := models.APIKey{
		Key:          uuid.New().String(),
		UserID:       uniqueID,
		RequestCount: 0,
	}
	if err := s.db.WithContext(ctx).Create(&apiKey).Error; err != nil {
		return "", fmt.Errorf("failed to create API key: %w", err)
	}

	return apiKey.Key, nil
}

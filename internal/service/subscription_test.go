package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/recipe-genie/backend/internal/models"
)

func setupSubscriptionTest(t *testing.T) (*SubscriptionService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.APIKey{}))
	return NewSubscriptionService(db), db
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("creates subscription and issues a fresh key", func(t *testing.T) {
		subs, db := setupSubscriptionTest(t)

		apiKey, err := subs.Subscribe(ctx, "user-42", "premium")
		require.NoError(t, err)
		assert.NotEmpty(t, apiKey)

		var user models.User
		require.NoError(t, db.First(&user, "id = ?", "user-42").Error)
		assert.Equal(t, "premium", user.SubscriptionPlan)
		assert.True(t, user.SubscriptionActive)
		assert.Equal(t, "active", user.SubscriptionStatus)

		var stored models.APIKey
		require.NoError(t, db.First(&stored, "key = ?", apiKey).Error)
		assert.Equal(t, "user-42", stored.UserID)
		assert.Equal(t, 0, stored.RequestCount)
		assert.Nil(t, stored.LastRequestTime)
	})

	t.Run("re-subscribing refreshes the plan and keeps old keys valid", func(t *testing.T) {
		subs, db := setupSubscriptionTest(t)

		first, err := subs.Subscribe(ctx, "user-42", "free")
		require.NoError(t, err)
		second, err := subs.Subscribe(ctx, "user-42", "premium")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)

		var user models.User
		require.NoError(t, db.First(&user, "id = ?", "user-42").Error)
		assert.Equal(t, "premium", user.SubscriptionPlan)

		var count int64
		require.NoError(t, db.Model(&models.APIKey{}).Where("user_id = ?", "user-42").Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("rejects incomplete requests", func(t *testing.T) {
		subs, _ := setupSubscriptionTest(t)

		_, err := subs.Subscribe(ctx, "", "premium")
		assert.ErrorIs(t, err, ErrMissingSubscriptionFields)

		_, err = subs.Subscribe(ctx, "user-42", "")
		assert.ErrorIs(t, err, ErrMissingSubscriptionFields)
	})
}

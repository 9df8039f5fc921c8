package models

import (
	"time"
)

// APIKey holds the per-key quota counters. The key itself is an opaque
// UUID string issued by the subscription flow. RequestCount and
// LastRequestTime are mutated only by the quota service; a nil
// LastRequestTime means the key has never been used and is treated as an
// expired window.
type APIKey struct {
	Key             string     `gorm:"type:varchar(36);primarykey" json:"key"`
	UserID          string     `gorm:"type:varchar(64);not null;index" json:"user_id"`
	CreatedAt       time.Time  `json:"created_at"`
	RequestCount    int        `gorm:"not null;default:0" json:"request_count"`
	LastRequestTime *time.Time `json:"last_request_time"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a subscription record. It is created or refreshed by the
// /subscribe endpoint; the generation pipeline never writes it.
type User struct {
	ID                 string         `gorm:"type:varchar(64);primarykey" json:"id"`
	SubscriptionPlan   string         `gorm:"not null" json:"subscription_plan"`
	SubscriptionDate   time.Time      `json:"subscription_date"`
	SubscriptionActive bool           `gorm:"not null;default:true" json:"is_subscription_active"`
	SubscriptionStatus string         `gorm:"not null;default:'active'" json:"subscription_status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

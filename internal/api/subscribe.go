package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipe-genie/backend/internal/service"
)

// SubscribeHandler handles subscription requests
type SubscribeHandler struct {
	subscriptions service.Subscriber
}

// NewSubscribeHandler creates a new SubscribeHandler instance
func NewSubscribeHandler(subscriptions service.Subscriber) *SubscribeHandler {
	return &SubscribeHandler{subscriptions: subscriptions}
}

// Subscribe handles POST /subscribe
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiKey, err := h.subscriptions.Subscribe(c.Request.Context(), req.UniqueID, req.SubscriptionPlan)
	if err != nil {
		if errors.Is(err, service.ErrMissingSubscriptionFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unique ID and subscription plan are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"api_key": apiKey})
}

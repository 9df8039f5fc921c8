package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipe-genie/backend/internal/service"
)

// APIKeyHeader carries the caller's key on protected routes.
const APIKeyHeader = "x-api-key"

// RequireAPIKey creates a middleware that validates the x-api-key header
// and applies the fixed-window quota before the handler runs. Rejections
// mutate nothing; every allowed request has already been counted by the
// time the handler sees it.
func RequireAPIKey(authorizer service.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}

		err := authorizer.Authorize(c.Request.Context(), key)
		switch {
		case err == nil:
			c.Set("api_key", key)
			c.Next()
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred: " + err.Error()})
			c.Abort()
		}
	}
}

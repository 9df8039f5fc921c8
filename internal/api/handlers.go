package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index returns the liveness string on GET /
func Index(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Recipe and Image Generator API")
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe Genie API is running",
		"version": "v1.0.0",
	})
}

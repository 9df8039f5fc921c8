package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery catches panics escaping any handler and reports them as a
// generic JSON 500. Stack traces stay in the log; the HTTP layer only
// ever surfaces the message.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Error: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("An unexpected error occurred: %v", r),
				})
			}
		}()
		c.Next()
	}
}

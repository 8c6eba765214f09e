package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks responses as cacheable; used on the static
// upload route, where references never change content.
func CacheControlMiddleware(duration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+duration)
		c.Next()
	}
}

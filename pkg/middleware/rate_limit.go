package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"pathwise/pkg/utils"
)

// RateLimitMiddleware throttles the routes it wraps with one shared token
// bucket. A nil limiter disables it.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, try again shortly")
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewLimiter returns nil when perSecond or burst is not positive.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 || burst <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

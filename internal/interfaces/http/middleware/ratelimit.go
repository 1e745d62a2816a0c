package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsportal/opsportal/internal/infrastructure/ratelimit"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/utils"
)

// RateLimit throttles callers by client IP. Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, policy ratelimit.Policy, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), policy)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

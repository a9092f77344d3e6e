package middleware

import (
	"strconv"
	"time"

	redisStore "github.com/heavensaji/fundtos/internal/adapter/storage/redis"
	"github.com/heavensaji/fundtos/pkg/apperror"
	"github.com/heavensaji/fundtos/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-group limits for mutating endpoints.
// Read-only campaign listings are unthrottled.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"donations":        {Limit: 30, Window: time.Minute},
		"campaigns_create": {Limit: 10, Window: time.Minute},
		"campaigns_manage": {Limit: 30, Window: time.Minute},
	}
}

// RateLimiter throttles a route group per wallet address (falling back to
// client IP when no wallet header is present). Redis failures degrade to
// allowing the request.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.GetHeader(HeaderWalletAddress)
		if identifier == "" {
			identifier = c.ClientIP()
		}

		result, err := store.Allow(c.Request.Context(), group, identifier, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(rule.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}
		c.Next()
	}
}

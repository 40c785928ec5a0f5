package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/tycoon/internal/playerctx"
)

const headerPlayerID = "X-Player-ID"

// PlayerIdentityMiddleware propagates the caller's player ID from the
// X-Player-ID header into the request context. The header is optional;
// when absent, mutations are not caller-checked.
func PlayerIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(headerPlayerID))
		if raw != "" {
			id, err := snowflake.ParseString(raw)
			if err != nil || id == 0 {
				AbortWithError(c, newValidationError("player_id", "invalid_player_id", "invalid player id header"))
				return
			}
			ctx := playerctx.WithPlayerID(c.Request.Context(), id)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// MutationRateLimitMiddleware throttles state-changing endpoints per
// caller, falling back to client IP when no identity header is present.
// No-op when the limiter is disabled.
func (s *Server) MutationRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.mutationLimiter.Enabled() {
			c.Next()
			return
		}

		caller := strings.TrimSpace(c.GetHeader(headerPlayerID))
		if caller == "" {
			caller = c.ClientIP()
		}

		allowed, retryAfter, err := s.mutationLimiter.Allow(c.Request.Context(), caller)
		if err != nil {
			// Redis trouble should not block gameplay.
			c.Next()
			return
		}
		if !allowed {
			if retryAfter > 0 {
				c.Header("Retry-After", retryAfter.String())
			}
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

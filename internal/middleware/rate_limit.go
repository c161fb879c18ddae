package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"friday-assistant/pkg/response"
)

// RateLimit applies a token bucket per client IP. Buckets live in an expiring LRU
// so idle clients are forgotten and the table stays bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiters == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !m.limiter(key).Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}

func (m Middleware) limiter(key string) *rate.Limiter {
	if lim, ok := m.limiters.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(m.rate, m.burst)
	// Concurrent first requests from one client may race here; the loser's bucket
	// is simply replaced.
	m.limiters.Add(key, lim)
	return lim
}

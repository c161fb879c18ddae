package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"friday-assistant/config"
	"friday-assistant/pkg/log"
)

// limiterTTL is how long an idle client keeps its bucket.
const limiterTTL = 5 * time.Minute

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New builds the middleware set. A non-positive PerMinute disables rate limiting.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	size := cfg.CacheSize
	if size <= 0 {
		size = 1024
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.PerMinute/10, 1)
	}

	mw := Middleware{
		l:     l,
		burst: burst,
	}
	if cfg.PerMinute > 0 {
		mw.rate = rate.Limit(float64(cfg.PerMinute) / 60.0) // per second
		mw.limiters = expirable.NewLRU[string, *rate.Limiter](size, nil, limiterTTL)
	}
	return mw
}

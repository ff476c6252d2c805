package coingecko_common

import (
	"math"

	"github.com/status-im/market-dashboard/config"
	"golang.org/x/time/rate"
)

// NewRateLimiter builds the outbound pacing limiter. It returns nil when pacing is
// disabled, which HTTPClient treats as unlimited. A 429 from the API is never retried.
func NewRateLimiter(cfg config.RateLimit) *rate.Limiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}

	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurstForLimit(limit)
	}
	return rate.NewLimiter(limit, burst)
}

func defaultBurstForLimit(limit rate.Limit) int {
	if limit <= 1.0 {
		return 1
	}
	return int(math.Ceil(float64(limit)))
}

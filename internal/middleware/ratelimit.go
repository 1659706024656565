package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "blog-platform/pkg/errors"
	"blog-platform/pkg/response"
)

// rateLimiter tracks per-client token buckets with automatic expiry so the
// map does not grow unbounded.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	perMin   int
}

func newRateLimiter(perMin int) *rateLimiter {
	if perMin <= 0 {
		perMin = 60
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1024, nil, 10*time.Minute),
		perMin:   perMin,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMin)), rl.perMin)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. Applied to the credential
// endpoints to slow down brute-force attempts.
func (m Middleware) RateLimit(perMin int) gin.HandlerFunc {
	rl := newRateLimiter(perMin)

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
			c.Abort()
			return
		}
		c.Next()
	}
}

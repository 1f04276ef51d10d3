package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	limiterCacheSize = 10_000
	limiterCacheTTL  = 10 * time.Minute
)

// WriteRateLimiter throttles the requests that mutate listings, per client ip. Reads are never limited.
type WriteRateLimiter struct {
	perSecond rate.Limit
	burst     int

	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

func NewWriteRateLimiter(perSecond float64, burst int) *WriteRateLimiter {
	return &WriteRateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		limiters:  expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
	}
}

func (l *WriteRateLimiter) limiter(clientIp string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters.Get(clientIp); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.perSecond, l.burst)
	l.limiters.Add(clientIp, limiter)
	return limiter
}

func (l *WriteRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if !l.limiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"podinfo/internal/config"
	"podinfo/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Paths that bypass rate limiting so probes and docs never get throttled
var rateLimitExemptPrefixes = []string{
	"/health",
	"/swagger/",
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter implements per-client rate limiting using a token bucket
type RateLimiter struct {
	clients  map[string]*clientLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	requests int
	window   time.Duration
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRateLimiter creates a limiter refilling cfg.RateLimit.Requests tokens per
// window with bursts of up to cfg.RateLimit.Burst
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	window := time.Duration(cfg.RateLimit.Window) * time.Second

	return &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		rate:     rate.Every(window / time.Duration(cfg.RateLimit.Requests)),
		burst:    cfg.RateLimit.Burst,
		requests: cfg.RateLimit.Requests,
		window:   window,
		idleTTL:  time.Hour,
		now:      time.Now,
	}
}

// getLimiter returns the limiter for key, creating it on first use
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// Prune drops limiters for clients idle longer than the idle TTL and
// returns how many were removed
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.idleTTL)
	removed := 0
	for key, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}

// Run prunes idle clients every interval until stop is closed
func (rl *RateLimiter) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Prune()
		case <-stop:
			return
		}
	}
}

func isRateLimitExempt(path string) bool {
	for _, prefix := range rateLimitExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Middleware returns a Gin middleware function that implements rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isRateLimitExempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		limiter := rl.getLimiter(c.ClientIP())
		now := rl.now()

		r := limiter.ReserveN(now, 1)
		if delay := r.DelayFrom(now); !r.OK() || delay > 0 {
			r.CancelAt(now)
			if !r.OK() {
				delay = rl.window
			}
			retryAfter := int(delay.Round(time.Second) / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(delay).Unix()))
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "rate limit exceeded"})
			return
		}

		remaining := int(limiter.TokensAt(now))
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(rl.window).Unix()))

		c.Next()
	}
}

package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMin int // per-IP request budget per minute
	Burst          int // burst capacity on top of the steady rate
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		RequestsPerMin: 60,
		Burst:          10,
	}
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides in-memory per-IP rate limiting
type RateLimiter struct {
	config   Config
	limiters map[string]*ipLimiter
	mutex    sync.Mutex
	stop     chan struct{}
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop
func NewRateLimiter(config Config) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*ipLimiter),
		stop:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether a request from ip fits the budget
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	l, ok := rl.limiters[ip]
	if !ok {
		perSecond := rate.Limit(float64(rl.config.RequestsPerMin) / 60.0)
		l = &ipLimiter{limiter: rate.NewLimiter(perSecond, rl.config.Burst)}
		rl.limiters[ip] = l
	}
	l.lastSeen = time.Now()
	return l.limiter.Allow()
}

// Close stops the cleanup loop
func (rl *RateLimiter) Close() {
	close(rl.stop)
}

// cleanupLoop periodically drops limiters for IPs not seen recently
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mutex.Lock()
			for ip, l := range rl.limiters {
				if l.lastSeen.Before(cutoff) {
					delete(rl.limiters, ip)
				}
			}
			rl.mutex.Unlock()
		}
	}
}

// Middleware enforces the per-IP limit on every request
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.RequestsPerMin))

		if !rl.Allow(ip) {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded for IP",
				"message": "You have exceeded the rate limit of " + strconv.Itoa(rl.config.RequestsPerMin) + " requests per minute",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyFunc picks the identity that owns a rate-limit bucket. It must return a
// stable string for the duration of a request.
type keyFunc func(*gin.Context) string

// KeyByClientIP keys buckets by the client IP address.
func KeyByClientIP() keyFunc {
	return func(c *gin.Context) string { return "ip:" + c.ClientIP() }
}

type bucket struct {
	lim     *rate.Limiter
	touched time.Time
}

// RateLimiter is a process-local token-bucket limiter with one bucket per
// key. Buckets are created on demand in a mutex-guarded map and idle ones are
// evicted after bucketTTL during periodic sweeps, so memory stays bounded.
// Horizontally scaled deployments need a distributed limiter instead.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc

	mu      sync.Mutex
	buckets map[string]*bucket
	lookups uint64
}

const (
	bucketTTL  = 10 * time.Minute
	sweepEvery = 5000 // lookups between idle-bucket sweeps
)

// NewRateLimiter builds a limiter replenishing rps tokens per second with the
// given burst size, keyed by keyFn. A burst <= 0 is coerced to 1 so that the
// limiter never deadlocks every request.
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		keyFn:   keyFn,
		buckets: make(map[string]*bucket),
	}
}

// getVisitor returns the bucket for key, creating it when absent and
// refreshing its idle timer. The sweep runs before the fetch so a stale
// bucket is evicted even when it is the one being asked for.
func (rl *RateLimiter) getVisitor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= sweepEvery {
		rl.sweepLocked(now)
		rl.lookups = 0
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rl.rps, rl.burst)}
		rl.buckets[key] = b
	}
	b.touched = now
	return b.lim
}

// sweepLocked drops buckets idle past bucketTTL. Callers hold rl.mu.
func (rl *RateLimiter) sweepLocked(now time.Time) {
	for k, b := range rl.buckets {
		if now.Sub(b.touched) >= bucketTTL {
			delete(rl.buckets, k)
		}
	}
}

// Handler enforces the per-key buckets. Rejected requests get a 429 with a
// compact JSON body and a minimal Retry-After header.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.getVisitor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}

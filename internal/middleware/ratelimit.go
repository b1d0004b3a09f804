package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter tracks request timestamps per client key over a
// sliding window. Gesture endpoints can fire rapidly during a drag, so
// the limit should leave headroom above normal pointer-move traffic.
type InMemoryRateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	l := &InMemoryRateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go l.sweep()
	return l
}

// prune drops timestamps older than the window in place and returns the
// surviving slice. Caller must hold mu.
func prune(times []time.Time, cutoff time.Time) []time.Time {
	kept := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (l *InMemoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	times := prune(l.seen[key], now.Add(-l.window))
	if len(times) >= l.limit {
		l.seen[key] = times
		return false
	}
	l.seen[key] = append(times, now)
	return true
}

func (l *InMemoryRateLimiter) sweep() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for k, times := range l.seen {
			kept := prune(times, cutoff)
			if len(kept) == 0 {
				delete(l.seen, k)
				continue
			}
			l.seen[k] = kept
		}
		l.mu.Unlock()
	}
}

// RateLimit limits by client IP across all routes it wraps.
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

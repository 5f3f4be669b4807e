package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateState struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a fixed-window counter keyed by client IP, held in process
// memory. Limits are per instance; a horizontally scaled deployment would see
// the quota multiplied by the number of instances.
type RateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	states map[string]*rateState
	now    func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		window: window,
		max:    max,
		states: make(map[string]*rateState),
		now:    time.Now,
	}
}

// Allow consumes one slot for key. The window starts on the first request and
// resets wholesale when it expires.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	state, ok := rl.states[key]
	if !ok || !state.resetAt.After(now) {
		// New window: also drop every expired entry so the map only
		// tracks clients with an active window.
		for k, s := range rl.states {
			if !s.resetAt.After(now) {
				delete(rl.states, k)
			}
		}
		rl.states[key] = &rateState{count: 1, resetAt: now.Add(rl.window)}
		return true
	}
	if state.count >= rl.max {
		return false
	}
	state.count++
	return true
}

// Limit rejects over-quota requests with 429. The name parameter keeps
// separate forms (contact, reclamations) on separate quotas.
func (rl *RateLimiter) Limit(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(name + ":" + c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Trop de demandes. Réessaie plus tard."})
			c.Abort()
			return
		}
		c.Next()
	}
}

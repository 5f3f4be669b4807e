package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Hour)
	rl.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("contact:1.2.3.4"), "request %d", i+1)
	}
	assert.False(t, rl.Allow("contact:1.2.3.4"))

	// inside the window the counter does not slide
	current = current.Add(59 * time.Minute)
	assert.False(t, rl.Allow("contact:1.2.3.4"))

	// a new window starts once the old one expires
	current = current.Add(2 * time.Minute)
	assert.True(t, rl.Allow("contact:1.2.3.4"))
}

func TestRateLimiterDropsExpiredEntries(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Hour)
	rl.now = func() time.Time { return current }

	for i := 0; i < 100; i++ {
		rl.Allow(fmt.Sprintf("contact:10.0.0.%d", i))
	}
	assert.Len(t, rl.states, 100)

	// the next window rollover sweeps every expired entry
	current = current.Add(2 * time.Hour)
	assert.True(t, rl.Allow("contact:back-again"))
	assert.Len(t, rl.states, 1)
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	assert.True(t, rl.Allow("contact:1.1.1.1"))
	assert.False(t, rl.Allow("contact:1.1.1.1"))
	assert.True(t, rl.Allow("contact:2.2.2.2"))
	assert.True(t, rl.Allow("reclamation:1.1.1.1"))
}

func TestLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, time.Hour)

	r := gin.New()
	r.POST("/contact", rl.Limit("contact"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}

package v1

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Middleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewRateLimiter(time.Hour, 2)
	router.POST("/reports", limiter.Middleware(logger), func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, makeRequest(router, "POST", "/reports", nil).Code)
	assert.Equal(t, http.StatusCreated, makeRequest(router, "POST", "/reports", nil).Code)

	w := makeRequest(router, "POST", "/reports", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())

	// другой IP не затронут
	assert.Equal(t, http.StatusCreated, makeRequest(router, "POST", "/reports", nil, map[string]string{"X-Forwarded-For": "198.51.100.7"}).Code)
}

func TestRateLimiter_Refill(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(10*time.Minute, 10)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		require.True(t, limiter.allow("10.0.0.1"))
	}
	assert.False(t, limiter.allow("10.0.0.1"))

	// один токен на минуту
	now = now.Add(time.Minute + time.Second)
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))
}

func TestRateLimiter_Evict(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(15*time.Minute, 5)
	limiter.now = func() time.Time { return now }

	limiter.allow("10.0.0.1")
	now = now.Add(10 * time.Minute)
	limiter.allow("10.0.0.2")

	now = now.Add(6 * time.Minute)
	limiter.evict()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.visitors, "10.0.0.1")
	assert.Contains(t, limiter.visitors, "10.0.0.2")
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(0, 0)

	assert.Equal(t, 1, limiter.burst)
	assert.Equal(t, 15*time.Minute, limiter.ttl)
}

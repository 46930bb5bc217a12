package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter, err := NewRateLimiter(2, time.Minute, 16)
	require.NoError(t, err)
	limiter.WithClock(func() time.Time { return now })

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))

	// другой ключ считается отдельно
	assert.True(t, limiter.Allow("2.2.2.2"))

	// новое окно
	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow("1.1.1.1"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter, err := NewRateLimiter(0, time.Minute, 16)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow("1.1.1.1"))
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"*"}))
	r.POST("/api/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

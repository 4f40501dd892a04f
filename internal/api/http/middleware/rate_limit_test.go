package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(l *Limiter, n int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/signin", l.PerMinute(n), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(router *gin.Engine) int {
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Code
}

func TestLimiter_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := newLimitedRouter(NewLimiter(client), 3)

	t.Run("allows up to the window size", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hit(router))
		}
	})

	t.Run("blocks the next request", func(t *testing.T) {
		assert.Equal(t, http.StatusTooManyRequests, hit(router))
	})

	t.Run("window resets after a minute", func(t *testing.T) {
		mr.FastForward(61 * time.Second)
		assert.Equal(t, http.StatusOK, hit(router))
	})
}

func TestLimiter_LocalFallback(t *testing.T) {
	router := newLimitedRouter(NewLimiter(nil), 2)

	assert.Equal(t, http.StatusOK, hit(router))
	assert.Equal(t, http.StatusOK, hit(router))
	assert.Equal(t, http.StatusTooManyRequests, hit(router))
}

func TestLimiter_RedisOutageFailsOpen(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := newLimitedRouter(NewLimiter(client), 1)
	mr.Close()

	// limiter errors must not take the endpoint down with them
	assert.Equal(t, http.StatusOK, hit(router))
}

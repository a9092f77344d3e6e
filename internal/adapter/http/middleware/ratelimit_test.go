package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "github.com/heavensaji/fundtos/internal/adapter/storage/redis"
	"github.com/heavensaji/fundtos/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedRouter(t *testing.T, rule RateLimitRule) (*gin.Engine, *miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisStore.NewRateLimitStore(client)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/donations", RateLimiter(store, "donations", rule, logger.New("error", false)), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})
	return r, mr, client
}

func hit(r *gin.Engine, wallet string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/donations", nil)
	if wallet != "" {
		req.Header.Set(HeaderWalletAddress, wallet)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_EnforcesLimit(t *testing.T) {
	r, _, _ := setupRateLimitedRouter(t, RateLimitRule{Limit: 2, Window: time.Minute})

	assert.Equal(t, http.StatusAccepted, hit(r, "0xdonor").Code)
	assert.Equal(t, http.StatusAccepted, hit(r, "0xdonor").Code)

	blocked := hit(r, "0xdonor")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Contains(t, blocked.Body.String(), "RATE_001")
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_PerWalletCounters(t *testing.T) {
	r, _, _ := setupRateLimitedRouter(t, RateLimitRule{Limit: 1, Window: time.Minute})

	assert.Equal(t, http.StatusAccepted, hit(r, "0xalpha").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "0xalpha").Code)

	// A different wallet has its own counter.
	assert.Equal(t, http.StatusAccepted, hit(r, "0xbeta").Code)
}

func TestRateLimiter_FallsBackToClientIP(t *testing.T) {
	r, _, _ := setupRateLimitedRouter(t, RateLimitRule{Limit: 1, Window: time.Minute})

	assert.Equal(t, http.StatusAccepted, hit(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "").Code)
}

func TestRateLimiter_SetsHeaders(t *testing.T) {
	r, _, _ := setupRateLimitedRouter(t, RateLimitRule{Limit: 5, Window: time.Minute})

	w := hit(r, "0xdonor")
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimiter_DegradesOpenOnRedisFailure(t *testing.T) {
	r, mr, _ := setupRateLimitedRouter(t, RateLimitRule{Limit: 1, Window: time.Minute})
	mr.Close()

	// Throttling is availability tooling; a dead Redis must not take the
	// API down with it.
	assert.Equal(t, http.StatusAccepted, hit(r, "0xdonor").Code)
	assert.Equal(t, http.StatusAccepted, hit(r, "0xdonor").Code)
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := DefaultRateLimitRules()
	assert.Contains(t, rules, "donations")
	assert.Contains(t, rules, "campaigns_create")
	assert.Contains(t, rules, "campaigns_manage")
	assert.Equal(t, int64(10), rules["campaigns_create"].Limit)
}

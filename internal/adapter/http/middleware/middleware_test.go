package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestWalletSession_Required(t *testing.T) {
	r := setupRouter()
	r.POST("/op", WalletSession(true), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"address": Identity(c).Address})
	})

	t.Run("rejects missing wallet header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/op", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "VAL_002", body["error_code"])
	})

	t.Run("passes identity through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/op", nil)
		req.Header.Set(HeaderWalletAddress, "0xdonor")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "0xdonor")
	})
}

func TestWalletSession_Optional(t *testing.T) {
	r := setupRouter()
	r.GET("/view", WalletSession(false), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"connected": Identity(c).Connected()})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")
}

func TestIdentity_AbsentIsZero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id := Identity(c)
	assert.Equal(t, ports.Identity{}, id)
	assert.False(t, id.Connected())
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	var captured string
	r.GET("/", RequestID(), func(c *gin.Context) {
		captured = c.GetString(CtxRequestID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, captured)
}

func TestRecovery(t *testing.T) {
	r := setupRouter()
	r.Use(Recovery(logger.New("error", false)))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestMaxBodySize(t *testing.T) {
	r := setupRouter()
	r.Use(MaxBodySize(16))
	r.POST("/", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("small body passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"`+strings.Repeat("x", 64)+`"}`))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

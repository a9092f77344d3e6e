package middleware

import (
	"net/http"
	"time"

	"github.com/heavensaji/fundtos/internal/core/ports"
	"github.com/heavensaji/fundtos/pkg/apperror"
	"github.com/heavensaji/fundtos/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderWalletAddress carries the connected wallet session's account.
	HeaderWalletAddress = "X-Wallet-Address"

	// Context keys
	CtxIdentity  = "identity"
	CtxRequestID = "request_id"
)

// WalletSession extracts the signing identity from the wallet session
// header. Mutating routes mount it with required=true: a missing address
// means "wallet not connected" and the request is rejected before any
// orchestration runs. Read-only routes never need it.
func WalletSession(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := ports.Identity{Address: c.GetHeader(HeaderWalletAddress)}
		if required && !identity.Connected() {
			response.Error(c, apperror.ErrWalletNotConnected())
			c.Abort()
			return
		}
		c.Set(CtxIdentity, identity)
		c.Next()
	}
}

// Identity returns the identity set by WalletSession (zero value if absent).
func Identity(c *gin.Context) ports.Identity {
	if v, ok := c.Get(CtxIdentity); ok {
		if id, ok := v.(ports.Identity); ok {
			return id
		}
	}
	return ports.Identity{}
}

// RequestID assigns a request id used by the response envelope and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRequestID, uuid.New().String())
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body to n bytes.
func MaxBodySize(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

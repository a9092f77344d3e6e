package handler

import (
	"net/http"
	"time"

	"github.com/heavensaji/fundtos/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck verifies every registered dependency and reports per-checker
// status. Any failure turns the response into a 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				deps[checker.Name()] = "unhealthy: " + err.Error()
				status = http.StatusServiceUnavailable
			} else {
				deps[checker.Name()] = "ok"
			}
		}

		c.JSON(status, gin.H{
			"status":       statusWord(status),
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}

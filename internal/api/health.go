package api

import (
	"context"  // Store ping
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// RootHandler answers GET / with a plaintext status line
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, MsgAPIRunning)
	}
}

// HealthHandler reports 503 while the store cannot be reached
func HealthHandler(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

package api

import (
	"agri_commerce/internal/utils" // Response cache
	"context"                      // Store and Redis operations
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// serveList answers a list request from the cache when possible, otherwise from load
func serveList[T any](c *gin.Context, cache *utils.Cache, key, field string, load func(context.Context) ([]T, error)) {
	ctx := c.Request.Context()
	var rows []T
	found, err := cache.GetCache(ctx, key, &rows) // Try to get cached rows
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
	}
	if err == nil && found {
		c.JSON(http.StatusOK, gin.H{field: rows}) // Return cached rows
		return
	}
	rows, err = load(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := cache.SetCache(ctx, key, rows); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
	c.JSON(http.StatusOK, gin.H{field: rows})
}

// invalidate drops the cached list of a resource after a write
func invalidate(c *gin.Context, cache *utils.Cache, key string) {
	if err := cache.DeleteCache(c.Request.Context(), key); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}

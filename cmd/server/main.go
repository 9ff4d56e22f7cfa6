package main

import (
	"agri_commerce/internal/api"        // Custom package for API handlers
	"agri_commerce/internal/config"     // Custom package for configuration
	"agri_commerce/internal/db"         // Connection pool and schema bootstrap
	"agri_commerce/internal/middleware" // Custom package for middleware
	"agri_commerce/internal/store"      // Data store gateway
	"agri_commerce/internal/utils"      // Cache and credentials
	"context"                           // context package is needed for Redis operations and shutdown
	"errors"                            // Server close detection
	"net/http"                          // HTTP server
	"os"                                // Signals
	"os/signal"                         // Signal notification
	"syscall"                           // SIGTERM
	"time"                              // Timeouts

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"golang.org/x/crypto/bcrypt"   // Password hashing cost
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)

	// Connect to the database
	dialector, err := db.Dialector(cfg)
	if err != nil {
		logrus.Fatalf("invalid database configuration: %v", err)
	}
	gdb, err := db.Open(dialector, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatalf("schema bootstrap failed: %v", err)
		}
	}

	// Redis is optional: without it lists are not cached and rate limits are per process
	var cache *utils.Cache
	var limiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewCache(redisClient, cfg.CacheTTL)
		limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
	}

	creds, err := utils.NewCredentials(cfg.AuthUsername, cfg.AuthPassword, bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash login password: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(api.Options{
		Store:          store.New(gdb),
		Cache:          cache,
		Credentials:    creds,
		Limiter:        limiter,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
		IsProd:         cfg.IsProd,
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown error")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close() // Release pooled connections
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logrus.Info("Server stopped")
}

// setupLogger configures the global logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

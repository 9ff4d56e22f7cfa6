package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	DBDriver        string        // Database driver: mysql or postgres
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	DBMaxOpenConns  int           // Maximum open connections in the pool
	DBMaxIdleConns  int           // Maximum idle connections in the pool
	DBConnLifetime  time.Duration // Maximum lifetime of a pooled connection
	DBAutoMigrate   bool          // Create missing tables on startup
	RedisAddr       string        // Redis server address, empty disables Redis
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	CacheTTL        time.Duration // TTL of cached list responses
	RateLimitWindow time.Duration // Rate limit window length
	RateLimitMax    int           // Requests allowed per client per window
	CORSOrigins     []string      // Allowed CORS origins, "*" allows all
	TrustedProxies  []string      // Proxies trusted for client IP resolution
	AuthUsername    string        // Login username
	AuthPassword    string        // Login password
	LogLevel        string        // Logrus level
	ShutdownTimeout time.Duration // Graceful shutdown deadline
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:         getEnv("APP_PORT", "3000"),
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", defaultDBPort(getEnv("DB_DRIVER", "mysql"))),
		DBName:          getEnv("DB_NAME", "agri_commerce"),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime:  getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DBAutoMigrate:   os.Getenv("DB_AUTO_MIGRATE") == "true",
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTL:        getEnvDuration("CACHE_TTL", 60*time.Second),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"*"}),
		TrustedProxies:  getEnvList("TRUSTED_PROXIES", []string{"127.0.0.1"}),
		AuthUsername:    getEnv("AUTH_USERNAME", "ESPOIR"),
		AuthPassword:    getEnv("AUTH_PASSWORD", "chou"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		IsProd:          os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// defaultDBPort returns the conventional port of a driver
func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// getEnvDuration accepts Go durations ("90s") or a bare number of seconds
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

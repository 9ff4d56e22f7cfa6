package db

import (
	"agri_commerce/internal/config" // Application configuration
	"fmt"                           // DSN formatting
	"time"                          // Slow query threshold

	"github.com/sirupsen/logrus"     // Logrus for structured logging
	"gorm.io/driver/mysql"           // MySQL driver for GORM
	"gorm.io/driver/postgres"        // PostgreSQL driver for GORM
	"gorm.io/gorm"                   // GORM ORM library
	gormlogger "gorm.io/gorm/logger" // GORM logger adapter
)

// DSN builds the data source name for the configured driver
func DSN(cfg *config.Config) string {
	if cfg.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	}
	// clientFoundRows makes UPDATE report matched rows, so an unchanged row is not "not found"
	return cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName +
		"?charset=utf8mb4&parseTime=true&clientFoundRows=true"
}

// Dialector returns the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql", "":
		return mysql.Open(DSN(cfg)), nil
	case "postgres":
		return postgres.Open(DSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// GormConfig is the GORM configuration used by Open and by the store tests
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true, // Turn unique violations into gorm.ErrDuplicatedKey
		Logger: gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond, // Log queries slower than this
			LogLevel:                  gormlogger.Warn,        // Only warnings and errors
			IgnoreRecordNotFoundError: true,                   // Missing rows are a normal outcome
		}),
	}
}

// Open connects to the database and sizes the connection pool
func Open(dialector gorm.Dialector, cfg *config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := gdb.DB() // Underlying connection pool
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)
	logrus.WithFields(logrus.Fields{
		"driver":         cfg.DBDriver,
		"host":           cfg.DBHost,
		"database":       cfg.DBName,
		"max_open_conns": cfg.DBMaxOpenConns,
	}).Info("Database connection pool ready")
	return gdb, nil
}

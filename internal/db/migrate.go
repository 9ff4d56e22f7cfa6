package db

import (
	"agri_commerce/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates missing tables, columns and indexes for the four resources.
// It never drops or rewrites existing columns.
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}, &domain.Payment{}); err != nil {
		logrus.WithError(err).Error("Schema bootstrap failed")
		return err
	}
	logrus.Info("Schema bootstrap completed.") // Log successful migration
	return nil
}

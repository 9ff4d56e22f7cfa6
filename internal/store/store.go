// Package store runs the SQL behind every resource handler through GORM.
//
// Each method issues parameterized statements only, returns domain.ErrNotFound
// when no row matches the id, domain.ErrDuplicate when a unique index rejects a
// write, and wraps every other driver failure in a *domain.StoreError.
package store

import (
	"context"
	"errors"

	"agri_commerce/internal/domain"

	"gorm.io/gorm"
)

// Store is the GORM-backed data store gateway
type Store struct {
	db *gorm.DB
}

// New returns a Store using the given connection pool
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks that a pooled connection can reach the database
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("ping", err)
	}
	return wrap("ping", sqlDB.PingContext(ctx))
}

// wrap maps GORM errors onto the domain taxonomy
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicate
	default:
		return &domain.StoreError{Op: op, Err: err}
	}
}

// updateByID applies columns to the row with the given id and reloads it into dest.
// A zero RowsAffected means no row matched.
func (s *Store) updateByID(ctx context.Context, op string, dest any, id uint, columns map[string]any) error {
	res := s.db.WithContext(ctx).Model(dest).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return wrap(op, s.db.WithContext(ctx).First(dest, id).Error)
}

// deleteByID loads the row into dest and removes it
func (s *Store) deleteByID(ctx context.Context, op string, dest any, id uint) error {
	if err := s.db.WithContext(ctx).First(dest, id).Error; err != nil {
		return wrap(op, err)
	}
	res := s.db.WithContext(ctx).Delete(dest, id)
	if res.Error != nil {
		return wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		// Removed by a concurrent request between the two statements
		return domain.ErrNotFound
	}
	return nil
}

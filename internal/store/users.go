package store

import (
	"context"

	"agri_commerce/internal/domain"
)

// ListUsers returns every user in store order
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, wrap("list users", err)
	}
	return users, nil
}

// EmailExists reports whether a user already holds email
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, wrap("check email", err)
	}
	return count > 0, nil
}

// CreateUser inserts user and fills in its id
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	return wrap("create user", s.db.WithContext(ctx).Create(user).Error)
}

// UpdateUser sets name and email of the user with id
func (s *Store) UpdateUser(ctx context.Context, id uint, name, email string) (*domain.User, error) {
	var user domain.User
	err := s.updateByID(ctx, "update user", &user, id, map[string]any{"name": name, "email": email})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user with id and returns the removed row
func (s *Store) DeleteUser(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.deleteByID(ctx, "delete user", &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

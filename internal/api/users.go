package api

import (
	"agri_commerce/internal/domain" // Importing domain models
	"agri_commerce/internal/utils"  // Response cache
	"context"                       // Store operations
	"net/http"                      // HTTP status codes
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// UserStore is the data access needed by the user handlers
type UserStore interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, id uint, name, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) (*domain.User, error)
}

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank"` // Name must be provided
	Email string `json:"email" binding:"required,email"`   // Email must be a valid address
}

// UpdateUserRequest is the body of PUT /api/users
type UpdateUserRequest struct {
	ID    uint   `json:"id" binding:"required"`             // Target user
	Name  string `json:"name" binding:"required,notblank"` // New name
	Email string `json:"email" binding:"required,email"`   // New email
}

// DeleteRequest is the body of the DELETE routes keyed by a body id
type DeleteRequest struct {
	ID uint `json:"id" binding:"required"` // Target row
}

// ListUsersHandler returns all users
func ListUsersHandler(s UserStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveList(c, cache, utils.UsersListKey, "users", s.ListUsers)
	}
}

// CreateUserHandler registers a user after checking that the email is free
func CreateUserHandler(s UserStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err) // Validation failed, no query issued
			return
		}
		ctx := c.Request.Context()
		email := normalizeEmail(req.Email) // Normalize before comparison and storage
		exists, err := s.EmailExists(ctx, email)
		if err != nil {
			respondError(c, err)
			return
		}
		// Reject duplicates before inserting
		if exists {
			respondError(c, &domain.ConflictError{Message: MsgEmailTaken})
			return
		}
		user := domain.User{Name: strings.TrimSpace(req.Name), Email: email}
		// The unique index still catches a concurrent insert of the same email
		if err := s.CreateUser(ctx, &user); err != nil {
			respondError(c, translate(err, MsgUserNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,       // User ID
			"type":    "create_user", // Operation
		}).Info("User created")
		invalidate(c, cache, utils.UsersListKey) // Invalidate users list cache
		c.JSON(http.StatusCreated, gin.H{"message": MsgUserCreated, "user": user})
	}
}

// UpdateUserHandler replaces the name and email of a user
func UpdateUserHandler(s UserStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		user, err := s.UpdateUser(c.Request.Context(), req.ID, strings.TrimSpace(req.Name), normalizeEmail(req.Email))
		if err != nil {
			respondError(c, translate(err, MsgUserNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "type": "update_user"}).Info("User updated")
		invalidate(c, cache, utils.UsersListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgUserUpdated, "user": user})
	}
}

// DeleteUserHandler removes a user and returns the removed row
func DeleteUserHandler(s UserStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		user, err := s.DeleteUser(c.Request.Context(), req.ID)
		if err != nil {
			respondError(c, translate(err, MsgUserNotFound))
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "type": "delete_user"}).Info("User deleted")
		invalidate(c, cache, utils.UsersListKey)
		c.JSON(http.StatusOK, gin.H{"message": MsgUserDeleted, "user": user})
	}
}

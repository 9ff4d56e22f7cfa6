package api

import (
	"agri_commerce/internal/domain" // Error taxonomy
	"agri_commerce/internal/utils"  // Credential check
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginHandler compares the submitted pair with the configured credentials.
// No token or session is issued.
func LoginHandler(creds *utils.Credentials) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, &domain.ValidationError{Message: MsgCredentialsRequired})
			return
		}
		if !creds.Verify(req.Username, req.Password) {
			logrus.WithFields(logrus.Fields{
				"username":  req.Username, // Submitted username
				"client_ip": c.ClientIP(), // Caller
			}).Warn("Login rejected")
			respondError(c, &domain.UnauthorizedError{Message: MsgInvalidCredentials})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": MsgLoginSuccess,
			"user":    gin.H{"username": creds.Username()},
		})
	}
}

package utils

import (
	"crypto/subtle" // Constant time username comparison

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Credentials is the single username/password pair accepted by the login route.
// Only a bcrypt hash of the password is kept.
type Credentials struct {
	username string // Accepted username
	hash     []byte // bcrypt hash of the accepted password
}

// NewCredentials hashes password with the given bcrypt cost
func NewCredentials(username, password string, cost int) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err // Return error if hashing fails
	}
	return &Credentials{username: username, hash: hash}, nil
}

// Verify reports whether username and password match the configured pair
func (c *Credentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	// bcrypt runs even when the username is wrong
	passOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return userOK && passOK
}

// Username returns the accepted username
func (c *Credentials) Username() string {
	return c.username
}
